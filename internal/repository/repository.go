package repository

import (
	"sync"
	"time"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
)

// Repository is the authoritative owner of all records. Data lives in
// process memory and resets on restart; every public operation takes the one
// mutex, so read-modify-write sequences on the same record can never
// interleave. Nothing outside this package touches the maps.
type Repository struct {
	mu        sync.RWMutex
	users     map[string]*domain.User
	tasks     map[string]*domain.Task
	comments  map[string][]*domain.TaskComment
	campaigns map[string]*domain.Campaign
}

func NewRepository() *Repository {
	return &Repository{
		users:     make(map[string]*domain.User),
		tasks:     make(map[string]*domain.Task),
		comments:  make(map[string][]*domain.TaskComment),
		campaigns: make(map[string]*domain.Campaign),
	}
}

// touch returns the updatedAt for a successful mutation: wall-clock now, but
// always strictly after the previous value even if the clock has not moved.
func touch(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func strPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
