package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited and scoped to the caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.Scope())

	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/stream", h.Stream)
	}

	rg.POST("/voice/process", h.ProcessVoice)
	rg.POST("/categories/suggest", h.SuggestCategory)
}
