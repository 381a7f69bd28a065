package repository

import (
	"slices"
	"strings"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/google/uuid"
)

// TaskFilter narrows GetAllTasks. Nil fields are ignored; supplied fields
// are exact-match and combine with AND.
type TaskFilter struct {
	Status      *domain.TaskStatus
	AssigneeID  *string
	CreatedByID *string
}

// TaskPatch carries the fields UpdateTask may merge over an existing task.
// Nil means "leave alone". The id, status, creator and timestamps are
// deliberately absent: status moves only through TransitionTask and the
// creator never changes.
type TaskPatch struct {
	Title          *string
	Requirement    *string
	ContentType    *domain.ContentType
	Platform       *domain.Platform
	Campaign       *string
	DueDate        *string
	Priority       *domain.Priority
	AssigneeID     *string
	BranchSpecific *string
	Format         *string
	EventBased     *string
	Reference      *string
	ThumbnailURL   *string
	Tags           []string
}

func cloneTask(t *domain.Task) *domain.Task {
	c := *t
	c.Platform = platformPtr(t.Platform)
	c.Campaign = strPtr(t.Campaign)
	c.DueDate = strPtr(t.DueDate)
	c.AssigneeID = strPtr(t.AssigneeID)
	c.BranchSpecific = strPtr(t.BranchSpecific)
	c.Format = strPtr(t.Format)
	c.EventBased = strPtr(t.EventBased)
	c.Reference = strPtr(t.Reference)
	c.ThumbnailURL = strPtr(t.ThumbnailURL)
	c.Tags = slices.Clone(t.Tags)
	return &c
}

func platformPtr(p *domain.Platform) *domain.Platform {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CreateTask stores a new task. The id is generated here, the status is
// forced to draft no matter what the caller put in, priority defaults to
// medium and both timestamps are stamped with the same instant. The caller's
// struct is filled in place, like a database insert with RETURNING.
func (r *Repository) CreateTask(task *domain.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return domain.ValidationError("task title is required")
	}
	if strings.TrimSpace(task.Requirement) == "" {
		return domain.ValidationError("task requirement is required")
	}
	if task.ContentType == "" {
		return domain.ValidationError("task content type is required")
	}
	if task.CreatedByID == "" {
		return domain.ValidationError("task creator is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = uuid.NewString()
	task.Status = domain.TaskStatusDraft
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	now := touch(task.CreatedAt)
	task.CreatedAt = now
	task.UpdatedAt = now

	r.tasks[task.ID] = cloneTask(task)

	return nil
}

func (r *Repository) GetTaskByID(id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.NotFoundError("task %q does not exist", id)
	}

	return cloneTask(task), nil
}

// GetAllTasks returns matching tasks newest first.
func (r *Repository) GetAllTasks(filter TaskFilter) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0)
	for _, task := range r.tasks {
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.AssigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *filter.AssigneeID) {
			continue
		}
		if filter.CreatedByID != nil && task.CreatedByID != *filter.CreatedByID {
			continue
		}
		tasks = append(tasks, cloneTask(task))
	}

	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return tasks, nil
}

// UpdateTask merges the patch over the stored task and refreshes updatedAt.
func (r *Repository) UpdateTask(id string, patch TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.NotFoundError("task %q does not exist", id)
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Requirement != nil {
		task.Requirement = *patch.Requirement
	}
	if patch.ContentType != nil {
		task.ContentType = *patch.ContentType
	}
	if patch.Platform != nil {
		task.Platform = platformPtr(patch.Platform)
	}
	if patch.Campaign != nil {
		task.Campaign = strPtr(patch.Campaign)
	}
	if patch.DueDate != nil {
		task.DueDate = strPtr(patch.DueDate)
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.AssigneeID != nil {
		task.AssigneeID = strPtr(patch.AssigneeID)
	}
	if patch.BranchSpecific != nil {
		task.BranchSpecific = strPtr(patch.BranchSpecific)
	}
	if patch.Format != nil {
		task.Format = strPtr(patch.Format)
	}
	if patch.EventBased != nil {
		task.EventBased = strPtr(patch.EventBased)
	}
	if patch.Reference != nil {
		task.Reference = strPtr(patch.Reference)
	}
	if patch.ThumbnailURL != nil {
		task.ThumbnailURL = strPtr(patch.ThumbnailURL)
	}
	if patch.Tags != nil {
		task.Tags = slices.Clone(patch.Tags)
	}

	task.UpdatedAt = touch(task.UpdatedAt)

	return cloneTask(task), nil
}

func (r *Repository) DeleteTask(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.NotFoundError("task %q does not exist", id)
	}

	delete(r.tasks, id)
	delete(r.comments, id)

	return nil
}

// TransitionTask runs the lifecycle gate and applies the resulting status in
// one step under the write lock. A rejected transition leaves the store
// untouched.
func (r *Repository) TransitionTask(id string, action domain.Action, actor domain.Actor) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.NotFoundError("task %q does not exist", id)
	}

	next, err := domain.AuthorizeTransition(task, actor, action)
	if err != nil {
		return nil, err
	}

	task.Status = next
	task.UpdatedAt = touch(task.UpdatedAt)

	return cloneTask(task), nil
}
