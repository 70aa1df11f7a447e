package api

import (
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/tagfinder/document"
	"github.com/gin-gonic/gin"
)

type FindDocumentTagsRequest struct {
	Document *string `json:"document" binding:"required"`
}

type FindDocumentTagsResponse struct {
	Lines []document.LineTags `json:"lines"`
}

func (s *Service) findDocumentTags(ctx *gin.Context) {
	var req FindDocumentTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	lines := document.SplitLines(*req.Document)

	if len(lines) > s.config.MaxDocumentLines {
		errField := ErrorField{
			FieldName:    "document",
			ErrorMessage: fmt.Sprintf("at most %d lines allowed, got %d", s.config.MaxDocumentLines, len(lines)),
		}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrDocumentTooLong, errField))
		return
	}

	result, err := s.scanner.FindTags(ctx.Request.Context(), lines, s.config.ScanWorkers)
	if err != nil {
		// the only possible error is the cancelled request
		logger := loggerFromCtx(ctx)
		logger.Warn().Err(err).Msg("document scan interrupted")
		ctx.JSON(http.StatusServiceUnavailable, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, FindDocumentTagsResponse{Lines: result})
}
