package domain

import (
	"time"
)

type Role string

const (
	RoleManager         Role = "manager"
	RoleCreativeTeam    Role = "creative_team"
	RoleDigitalMarketer Role = "digital_marketer"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Actor is the slice of a user the lifecycle gate needs: handlers build it
// from the auth token, never from the request body.
type Actor struct {
	ID   string
	Role Role
}
