package employee

import (
	"go-staffdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RateLimitByIP(5, 20), handler.GetAll)
		employees.GET("/options", middleware.RateLimitByIP(5, 20), handler.GetOptions)
		employees.GET("/stats", middleware.RateLimitByIP(5, 20), handler.GetStats)
		employees.GET("/:id", middleware.RateLimitByIP(5, 20), handler.GetByID)
	}
}
