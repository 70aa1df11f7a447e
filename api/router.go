package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(service.corsMiddleware())
	router.Use(bodyLimitMiddleware(requestBodyLimit))

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(TagsURL, service.findTags)
	router.POST(DocumentsTagsURL, service.findDocumentTags)

	server.Handler = router
	service.router = router
}

// bodyLimitMiddleware rejects request bodies larger than limit bytes.
func bodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		ctx.Next()
	}
}
