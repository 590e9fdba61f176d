package category

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes keeps reads public. Writes need the category:write grant,
// which only SUPERADMIN holds.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	categories := r.Group("/categories")
	{
		categories.GET("", middleware.RateLimitByIP(5, 20), h.GetAll)
		categories.GET("/:id", middleware.RateLimitByIP(5, 20), h.GetByID)

		write := middleware.RBACAuthorize(rbacService, domain.ResourceCategory, domain.ActionWrite)
		categories.POST("", auth, write, h.Create)
		categories.PATCH("/:id", auth, write, h.Update)
		categories.DELETE("/:id", auth, write, h.Delete)
	}
}
