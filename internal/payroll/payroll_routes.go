package payroll

import (
	"go-staffdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payments := r.Group("/employees/:id/payments")
	{
		payments.GET("", middleware.RateLimitByIP(5, 20), handler.GetAll)
		payments.GET("/:paymentId/payslip", middleware.RateLimitByIP(2, 5), handler.DownloadPayslip)
		if redisClient != nil {
			payments.POST(
				"",
				middleware.RateLimitByIP(2, 5),
				middleware.Idempotency(redisClient),
				handler.Create,
			)
		} else {
			payments.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		}
	}
}
