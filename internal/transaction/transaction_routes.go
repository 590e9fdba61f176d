package transaction

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService, rdb redis.Cmdable) {
	r.GET("/payment-types", middleware.RateLimitByIP(5, 20), handler.PaymentTypes)

	transactions := r.Group("/transactions")
	transactions.Use(auth, middleware.ExtractUserID(), middleware.RateLimitByUser(5, 20))
	{
		read := middleware.RBACAuthorize(rbacService, domain.ResourceTransaction, domain.ActionRead)
		write := middleware.RBACAuthorize(rbacService, domain.ResourceTransaction, domain.ActionWrite)

		transactions.POST("", write, middleware.Idempotency(rdb), handler.Create)
		transactions.GET("", read, handler.GetAll)
		transactions.GET("/summary", read, handler.Summary)
	}
}
