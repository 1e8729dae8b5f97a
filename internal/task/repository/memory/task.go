package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"voice-task-manager/internal/model"
	"voice-task-manager/internal/task/repository"
	pkgLog "voice-task-manager/pkg/log"
)

// subscriberBuffer bounds how far a slow stream reader may lag before records are dropped for it.
const subscriberBuffer = 32

type subscriber struct {
	ch chan model.Task
}

type implRepository struct {
	l   pkgLog.Logger
	now func() time.Time

	mu    sync.RWMutex
	tasks map[string][]model.Task // by owner, in creation order
	subs  map[string]map[*subscriber]struct{}
}

// New creates an in-process task store.
func New(l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		l:     l,
		now:   time.Now,
		tasks: make(map[string][]model.Task),
		subs:  make(map[string]map[*subscriber]struct{}),
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if opt.OwnerID == "" {
		return model.Task{}, repository.ErrMissingOwner
	}

	t := model.Task{
		ID:           uuid.NewString(),
		OwnerID:      opt.OwnerID,
		TaskName:     opt.TaskName,
		Description:  opt.Description,
		Date:         cloneString(opt.Date),
		Time:         cloneString(opt.Time),
		Tags:         append([]string{}, opt.Tags...),
		Category:     opt.Category,
		CalendarLink: opt.CalendarLink,
		CreatedAt:    r.now().UTC(),
	}

	r.mu.Lock()
	r.tasks[opt.OwnerID] = append(r.tasks[opt.OwnerID], t)
	r.publishLocked(ctx, t)
	r.mu.Unlock()

	return t, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if opt.OwnerID == "" {
		return nil, repository.ErrMissingOwner
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.tasks[opt.OwnerID]
	start := 0
	if opt.Limit > 0 && len(all) > opt.Limit {
		start = len(all) - opt.Limit
	}

	out := make([]model.Task, len(all)-start)
	copy(out, all[start:])
	return out, nil
}

func (r *implRepository) Subscribe(ctx context.Context, ownerID string) (<-chan model.Task, error) {
	if ownerID == "" {
		return nil, repository.ErrMissingOwner
	}

	s := &subscriber{ch: make(chan model.Task, subscriberBuffer)}

	r.mu.Lock()
	if r.subs[ownerID] == nil {
		r.subs[ownerID] = make(map[*subscriber]struct{})
	}
	r.subs[ownerID][s] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.subs[ownerID], s)
		if len(r.subs[ownerID]) == 0 {
			delete(r.subs, ownerID)
		}
		close(s.ch)
		r.mu.Unlock()
	}()

	return s.ch, nil
}

// publishLocked fans t out to the owner's subscribers. Callers hold r.mu.
func (r *implRepository) publishLocked(ctx context.Context, t model.Task) {
	for s := range r.subs[t.OwnerID] {
		select {
		case s.ch <- t:
		default:
			r.l.Warnf(ctx, "memory repository: subscriber for owner %s is full, dropping task %s", t.OwnerID, t.ID)
		}
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
