package repository

import (
	"slices"
	"strings"
	"time"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/google/uuid"
)

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

// CreateUser assigns a fresh id and stores the user. Emails are unique.
func (r *Repository) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ValidationError("email %q is already registered", user.Email)
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *Repository) GetUserByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.NotFoundError("user %q does not exist", id)
	}

	return cloneUser(user), nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, domain.NotFoundError("no user with email %q", email)
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}

	slices.SortFunc(users, func(a, b *domain.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})

	return users, nil
}
