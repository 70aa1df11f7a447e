package api

import (
	"errors"
	"net/http"

	"github.com/Drolfothesgnir/tagfinder/finder"
	"github.com/Drolfothesgnir/tagfinder/tmpstore"
	"github.com/gin-gonic/gin"
)

// FindTagsRequest uses a pointer to tell an empty line, which is valid, from a missing one.
type FindTagsRequest struct {
	Line *string `json:"line" binding:"required"`
}

type FindTagsResponse struct {
	Tags []finder.Tag `json:"tags"`
}

func (s *Service) findTags(ctx *gin.Context) {
	var req FindTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	line := *req.Line
	logger := loggerFromCtx(ctx)

	tags, err := s.store.GetTags(ctx, line)
	if err == nil {
		ctx.JSON(http.StatusOK, FindTagsResponse{Tags: tags})
		return
	}

	// the cache is an optimization only, so its failures don't fail the request
	if !errors.Is(err, tmpstore.ErrCacheMiss) {
		logger.Warn().Err(err).Msg("cannot read cached tags")
	}

	tags = s.newFinder().FindTags(line)

	if err := s.store.SaveTags(ctx, line, tags, s.config.CacheTTL); err != nil {
		logger.Warn().Err(err).Msg("cannot cache tags")
	}

	ctx.JSON(http.StatusOK, FindTagsResponse{Tags: tags})
}
