package company

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	company := r.Group("/companies")
	company.Use(auth)
	{
		// Dashboard/profile reads are frequent.
		company.GET("/me",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceCompany, domain.ActionRead),
			handler.GetMe,
		)

		company.PATCH("/me",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceCompany, domain.ActionWrite),
			handler.UpdateMe,
		)
	}
}
