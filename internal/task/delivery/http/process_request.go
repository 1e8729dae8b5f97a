package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-manager/internal/middleware"
	"voice-task-manager/internal/model"
	pkgErrors "voice-task-manager/pkg/errors"
)

// processParseReq binds and validates the parse/create request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processParseReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processVoiceReq binds and validates the voice transcript body.
func (h *handler) processVoiceReq(c *gin.Context) (voiceReq, error) {
	var req voiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processVoiceReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processListReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processSuggestCategoryReq binds and validates the category suggestion body.
func (h *handler) processSuggestCategoryReq(c *gin.Context) (suggestCategoryReq, error) {
	var req suggestCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processSuggestCategoryReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// scope returns the caller scope set by the Scope middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}
