package department

import (
	"go-staffdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", middleware.RateLimitByIP(5, 20), h.GetAll)
		departments.GET("/:name", middleware.RateLimitByIP(5, 20), h.GetByName)
	}
}
