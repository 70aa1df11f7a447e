package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// requestIDMiddleware assigns an ID to every request, unless the client has sent a valid one,
// and logs the request after it's handled.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		id := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx.Set(requestIDCtxKey, id)
		ctx.Header(RequestIDHeader, id)

		ctx.Next()

		status := ctx.Writer.Status()

		var event *zerolog.Event
		if status >= 500 {
			event = log.Error()
		} else {
			event = log.Info()
		}

		event.
			Str("request_id", id).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("handled HTTP request")
	}
}

// loggerFromCtx returns the global logger enriched with the request ID.
func loggerFromCtx(ctx *gin.Context) zerolog.Logger {
	return log.With().Str("request_id", ctx.GetString(requestIDCtxKey)).Logger()
}
