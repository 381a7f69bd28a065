package repository

import (
	"testing"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskComment_UnknownTask(t *testing.T) {
	repo := NewRepository()

	err := repo.CreateTaskComment(&domain.TaskComment{TaskID: "missing", UserID: "u1", Comment: "hello"})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)

	// Nothing must be recorded for the unknown task
	_, err = repo.GetTaskComments("missing")
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)
}

func TestTaskComments_AppendOnlyAscending(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	require.NoError(t, repo.CreateTask(task))

	texts := []string{"first pass", "needs a brighter palette", "final version attached"}
	for _, text := range texts {
		require.NoError(t, repo.CreateTaskComment(&domain.TaskComment{TaskID: task.ID, UserID: "u2", Comment: text}))
	}

	comments, err := repo.GetTaskComments(task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	for i, comment := range comments {
		assert.Equal(t, texts[i], comment.Comment)
		assert.NotEmpty(t, comment.ID)
		if i > 0 {
			assert.False(t, comment.CreatedAt.Before(comments[i-1].CreatedAt))
		}
	}
}

func TestCreateTaskComment_EmptyText(t *testing.T) {
	repo := NewRepository()

	task := newTask("u1")
	require.NoError(t, repo.CreateTask(task))

	err := repo.CreateTaskComment(&domain.TaskComment{TaskID: task.ID, UserID: "u1", Comment: "  "})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
}
