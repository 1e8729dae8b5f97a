package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-manager/internal/task"
	pkgErrors "voice-task-manager/pkg/errors"
	"voice-task-manager/pkg/response"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors that are not the caller's fault.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrNoCategories),
		errors.Is(err, task.ErrInvalidAnchorDate),
		errors.Is(err, task.ErrInvalidMode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrMissingScope):
		return pkgErrors.ErrUnauthorized
	default:
		return nil
	}
}

// respondError writes a mapped error, or a 500 for anything unmapped.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		h.l.Warnf(c.Request.Context(), "%s: %v", op, err)
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
