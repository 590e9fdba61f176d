package product

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes exposes reads to anonymous callers through optionalAuth;
// writes need auth and the product:write grant.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth, optionalAuth gin.HandlerFunc, rbacService middleware.RBACService) {
	products := r.Group("/products")
	{
		products.GET("", optionalAuth, middleware.RateLimitByIP(5, 20), handler.GetAll)
		products.GET("/:id", optionalAuth, middleware.RateLimitByIP(5, 20), handler.GetByID)
		products.POST("/:id/quote", middleware.RateLimitByIP(5, 20), handler.Quote)

		write := middleware.RBACAuthorize(rbacService, domain.ResourceProduct, domain.ActionWrite)
		products.POST("", auth, middleware.RateLimitByUser(1, 5), write, handler.Create)
		products.PATCH("/:id", auth, middleware.RateLimitByUser(1, 5), write, handler.Update)
		products.DELETE("/:id", auth, middleware.RateLimitByUser(1, 5), write, handler.Delete)
		products.POST("/:id/image", auth, middleware.RateLimitByUser(0.2, 2), write, handler.UploadImage)
	}
}
