package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/response"
)

// Recovery turns a handler panic into a 500 with the standard error body.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "recovery").Logger()
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", response.RequestID(c)).
			Msg("Handler panicked")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	})
}
