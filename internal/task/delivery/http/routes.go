package http

import (
	"github.com/gin-gonic/gin"

	"realtime-taskboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", mw.RateLimit(), h.List)
		tasks.PUT("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
