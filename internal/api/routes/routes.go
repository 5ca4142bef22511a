package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/konselor/internal/api/handlers"
)

type Deps struct {
	Session     *handlers.SessionHandler
	Interaction *handlers.InteractionHandler
	Generation  *handlers.GenerationHandler

	// GeminiMiddleware runs in front of the generate endpoint only
	// (rate limiting). May be empty.
	GeminiMiddleware []gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, prefix string, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group(prefix)

	api.POST("/sessions", d.Session.Create)
	api.POST("/interactions", d.Interaction.Record)

	gemini := append(append([]gin.HandlerFunc{}, d.GeminiMiddleware...), d.Generation.Generate)
	api.POST("/gemini", gemini...)
}
