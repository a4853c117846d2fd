package attendance

import (
	"go-staffdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendance := r.Group("/employees/:id/attendance")
	{
		attendance.GET("", middleware.RateLimitByIP(5, 20), h.GetHistory)
		attendance.GET("/today", middleware.RateLimitByIP(5, 20), h.GetToday)
		attendance.PUT("/today", middleware.RateLimitByIP(2, 5), h.MarkToday)
	}
}
