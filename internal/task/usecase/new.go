package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-manager/internal/task"
	"voice-task-manager/internal/task/repository"
	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/datemath"
	"voice-task-manager/pkg/gcalendar"
	"voice-task-manager/pkg/llmprovider"
	pkgLog "voice-task-manager/pkg/log"
)

// LLM is the hosted-model client used for extraction and categorization.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options holds the optional collaborators and tuning of the task use case.
type Options struct {
	// LLM enables the hosted-model path when set.
	LLM LLM
	// Calendar mirrors dated tasks when set.
	Calendar   gcalendar.EventCreator
	CalendarID string
	// CacheSize and CacheTTL bound the category suggestion cache.
	CacheSize int
	CacheTTL  time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	dateMath   *datemath.Parser
	classifier *categorize.Classifier
	llm        LLM
	calendar   gcalendar.EventCreator
	calendarID string
	cache      *expirable.LRU[string, categorize.Result]
	now        func() time.Time
}

const (
	defaultCacheSize = 256
	defaultCacheTTL  = time.Hour
)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	dateMath *datemath.Parser,
	classifier *categorize.Classifier,
	opts Options,
) task.UseCase {
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		dateMath:   dateMath,
		classifier: classifier,
		llm:        opts.LLM,
		calendar:   opts.Calendar,
		calendarID: opts.CalendarID,
		cache:      expirable.NewLRU[string, categorize.Result](size, nil, ttl),
		now:        time.Now,
	}
}
