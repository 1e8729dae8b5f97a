package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-manager/internal/task"
	"voice-task-manager/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Create(c *gin.Context)
	ProcessVoice(c *gin.Context)
	List(c *gin.Context)
	Stream(c *gin.Context)
	SuggestCategory(c *gin.Context)
}

type handler struct {
	l                 log.Logger
	uc                task.UseCase
	defaultCategories []string
}

// New creates a new HTTP handler for the task domain.
// defaultCategories are offered when a suggestion request names none.
func New(l log.Logger, uc task.UseCase, defaultCategories []string) Handler {
	return &handler{
		l:                 l,
		uc:                uc,
		defaultCategories: defaultCategories,
	}
}
