package repository

import (
	"slices"
	"strings"
	"time"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/google/uuid"
)

func cloneComment(c *domain.TaskComment) *domain.TaskComment {
	cc := *c
	return &cc
}

// CreateTaskComment appends a comment to an existing task. Comments are
// append-only, there is no update or delete.
func (r *Repository) CreateTaskComment(comment *domain.TaskComment) error {
	if strings.TrimSpace(comment.Comment) == "" {
		return domain.ValidationError("comment text is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[comment.TaskID]; !ok {
		return domain.NotFoundError("task %q does not exist", comment.TaskID)
	}

	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UTC()
	r.comments[comment.TaskID] = append(r.comments[comment.TaskID], cloneComment(comment))

	return nil
}

// GetTaskComments lists a task's comments oldest first.
func (r *Repository) GetTaskComments(taskID string) ([]*domain.TaskComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.tasks[taskID]; !ok {
		return nil, domain.NotFoundError("task %q does not exist", taskID)
	}

	comments := make([]*domain.TaskComment, 0, len(r.comments[taskID]))
	for _, comment := range r.comments[taskID] {
		comments = append(comments, cloneComment(comment))
	}

	// Append order already is creation order; the sort keeps the guarantee
	// even if that ever changes.
	slices.SortStableFunc(comments, func(a, b *domain.TaskComment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return comments, nil
}
