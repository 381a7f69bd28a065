package repository

import (
	"testing"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_AndLookup(t *testing.T) {
	repo := NewRepository()

	user := &domain.User{
		Email:        "creative@company.com",
		PasswordHash: "hash",
		Name:         "Alex Chen",
		Role:         domain.RoleCreativeTeam,
	}
	require.NoError(t, repo.CreateUser(user))
	assert.NotEmpty(t, user.ID)

	byID, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", byID.Name)

	byEmail, err := repo.GetUserByEmail("creative@company.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := NewRepository()

	require.NoError(t, repo.CreateUser(&domain.User{Email: "manager@company.com", Name: "Sarah", Role: domain.RoleManager}))

	err := repo.CreateUser(&domain.User{Email: "manager@company.com", Name: "Impostor", Role: domain.RoleManager})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := NewRepository()

	var de *domain.Error

	_, err := repo.GetUserByID("missing")
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)

	_, err = repo.GetUserByEmail("nobody@company.com")
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)
}

func TestGetAllUsers_StableOrder(t *testing.T) {
	repo := NewRepository()

	emails := []string{"a@company.com", "b@company.com", "c@company.com"}
	for _, email := range emails {
		require.NoError(t, repo.CreateUser(&domain.User{Email: email, Name: email, Role: domain.RoleCreativeTeam}))
	}

	users, err := repo.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, user := range users {
		assert.Equal(t, emails[i], user.Email)
	}
}
