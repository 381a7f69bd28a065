package repository

import (
	"sync"
	"testing"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newTask(createdByID string) *domain.Task {
	return &domain.Task{
		Title:       "Diwali post",
		Requirement: "Festival creative for the new store",
		ContentType: domain.ContentTypeImage,
		CreatedByID: createdByID,
	}
}

func TestCreateTask_Defaults(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	// Whatever the caller smuggles in is overridden on create
	task.Status = domain.TaskStatusApproved
	task.ID = "chosen-id"

	require.NoError(t, repo.CreateTask(task))

	assert.Equal(t, domain.TaskStatusDraft, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, "u1", task.CreatedByID)
	assert.NotEqual(t, "chosen-id", task.ID)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	stored, err := repo.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDraft, stored.Status)
}

func TestCreateTask_Validation(t *testing.T) {
	repo := NewRepository()

	tests := []struct {
		name   string
		mutate func(*domain.Task)
	}{
		{"missing title", func(task *domain.Task) { task.Title = " " }},
		{"missing requirement", func(task *domain.Task) { task.Requirement = "" }},
		{"missing content type", func(task *domain.Task) { task.ContentType = "" }},
		{"missing creator", func(task *domain.Task) { task.CreatedByID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTask("u1")
			tt.mutate(task)

			err := repo.CreateTask(task)
			require.Error(t, err)

			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, domain.KindValidation, de.Kind)
		})
	}
}

func TestCreateTask_UniqueIDsUnderConcurrency(t *testing.T) {
	repo := NewRepository()

	const n = 200
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task := newTask("u1")
			if err := repo.CreateTask(task); err == nil {
				ids <- task.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUpdateTask_MergeAndImmutableCreator(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	require.NoError(t, repo.CreateTask(task))

	updated, err := repo.UpdateTask(task.ID, TaskPatch{
		Title:      ptr("Diwali post v2"),
		Priority:   ptr(domain.PriorityUrgent),
		AssigneeID: ptr("u2"),
		Tags:       []string{"festival", "jewellery"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Diwali post v2", updated.Title)
	assert.Equal(t, domain.PriorityUrgent, updated.Priority)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, "u2", *updated.AssigneeID)
	assert.Equal(t, []string{"festival", "jewellery"}, updated.Tags)

	// Untouched fields survive the merge, the creator always does
	assert.Equal(t, task.Requirement, updated.Requirement)
	assert.Equal(t, "u1", updated.CreatedByID)
	assert.Equal(t, task.ID, updated.ID)
}

func TestUpdateTask_MonotonicUpdatedAt(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	require.NoError(t, repo.CreateTask(task))

	before := task.UpdatedAt
	updated, err := repo.UpdateTask(task.ID, TaskPatch{Title: ptr("renamed")})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before), "updatedAt must strictly increase on success")

	again, err := repo.UpdateTask(task.ID, TaskPatch{Title: ptr("renamed again")})
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.UpdateTask("missing", TaskPatch{Title: ptr("x")})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)
}

func TestGetAllTasks_FiltersAndOrder(t *testing.T) {
	repo := NewRepository()

	creative := domain.Actor{ID: "u2", Role: domain.RoleCreativeTeam}
	manager := domain.Actor{ID: "u1", Role: domain.RoleManager}

	first := newTask("u2")
	require.NoError(t, repo.CreateTask(first))

	second := newTask("u2")
	second.Title = "Wedding promo"
	require.NoError(t, repo.CreateTask(second))
	_, err := repo.TransitionTask(second.ID, domain.ActionSendForApproval, creative)
	require.NoError(t, err)

	third := newTask("u3")
	third.Title = "Store opening reel"
	third.AssigneeID = ptr("u2")
	require.NoError(t, repo.CreateTask(third))
	_, err = repo.TransitionTask(third.ID, domain.ActionSendForApproval, domain.Actor{ID: "u3", Role: domain.RoleDigitalMarketer})
	require.NoError(t, err)
	_, err = repo.TransitionTask(third.ID, domain.ActionApprove, manager)
	require.NoError(t, err)

	all, err := repo.GetAllTasks(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	inReview, err := repo.GetAllTasks(TaskFilter{Status: ptr(domain.TaskStatusInReview)})
	require.NoError(t, err)
	require.Len(t, inReview, 1)
	assert.Equal(t, second.ID, inReview[0].ID)

	byCreator, err := repo.GetAllTasks(TaskFilter{CreatedByID: ptr("u2")})
	require.NoError(t, err)
	assert.Len(t, byCreator, 2)

	byAssignee, err := repo.GetAllTasks(TaskFilter{AssigneeID: ptr("u2")})
	require.NoError(t, err)
	require.Len(t, byAssignee, 1)
	assert.Equal(t, third.ID, byAssignee[0].ID)

	// AND across supplied filters
	none, err := repo.GetAllTasks(TaskFilter{Status: ptr(domain.TaskStatusInReview), CreatedByID: ptr("u3")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransitionTask_SuccessPath(t *testing.T) {
	repo := NewRepository()

	task := newTask("u2")
	require.NoError(t, repo.CreateTask(task))

	sent, err := repo.TransitionTask(task.ID, domain.ActionSendForApproval, domain.Actor{ID: "u2", Role: domain.RoleCreativeTeam})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInReview, sent.Status)
	assert.True(t, sent.UpdatedAt.After(task.UpdatedAt))

	approved, err := repo.TransitionTask(task.ID, domain.ActionApprove, domain.Actor{ID: "u1", Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusApproved, approved.Status)

	completed, err := repo.TransitionTask(task.ID, domain.ActionComplete, domain.Actor{ID: "u2", Role: domain.RoleCreativeTeam})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, completed.Status)
}

func TestTransitionTask_RejectionLeavesStoreUnchanged(t *testing.T) {
	repo := NewRepository()

	task := newTask("u2")
	require.NoError(t, repo.CreateTask(task))

	before, err := repo.GetTaskByID(task.ID)
	require.NoError(t, err)

	// Wrong source state: draft cannot be approved, even by a manager
	_, err = repo.TransitionTask(task.ID, domain.ActionApprove, domain.Actor{ID: "u1", Role: domain.RoleManager})
	require.Error(t, err)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindInvalidTransition, de.Kind)

	after, err := repo.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Wrong role: a marketer cannot approve a task in review
	_, err = repo.TransitionTask(task.ID, domain.ActionSendForApproval, domain.Actor{ID: "u2", Role: domain.RoleCreativeTeam})
	require.NoError(t, err)
	before, err = repo.GetTaskByID(task.ID)
	require.NoError(t, err)

	_, err = repo.TransitionTask(task.ID, domain.ActionApprove, domain.Actor{ID: "u3", Role: domain.RoleDigitalMarketer})
	require.Error(t, err)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindUnauthorized, de.Kind)

	after, err = repo.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTransitionTask_NotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.TransitionTask("missing", domain.ActionApprove, domain.Actor{ID: "u1", Role: domain.RoleManager})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)
}

func TestDeleteTask(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	require.NoError(t, repo.CreateTask(task))
	require.NoError(t, repo.CreateTaskComment(&domain.TaskComment{TaskID: task.ID, UserID: "u1", Comment: "looks good"}))

	require.NoError(t, repo.DeleteTask(task.ID))

	_, err := repo.GetTaskByID(task.ID)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)

	err = repo.DeleteTask(task.ID)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)
}

func TestReturnedTasksAreCopies(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	task.Tags = []string{"festival"}
	require.NoError(t, repo.CreateTask(task))

	got, err := repo.GetTaskByID(task.ID)
	require.NoError(t, err)

	got.Title = "mutated"
	got.Tags[0] = "mutated"

	fresh, err := repo.GetTaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diwali post", fresh.Title)
	assert.Equal(t, []string{"festival"}, fresh.Tags)
}
