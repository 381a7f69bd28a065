package seed

import (
	"fmt"
	"log/slog"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Demo accounts, one per role. The store is in-memory and starts empty on
// every boot, so the owning process calls Users explicitly at startup;
// nothing here runs as an import side effect.
var demoUsers = []struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}{
	{"manager@company.com", "manager123", "Sarah Johnson", domain.RoleManager},
	{"creative@company.com", "creative123", "Alex Chen", domain.RoleCreativeTeam},
	{"marketing@company.com", "marketing123", "Maria Rodriguez", domain.RoleDigitalMarketer},
}

// Users creates the three demo accounts and returns them keyed by role.
func Users(repo *repository.Repository) (map[domain.Role]*domain.User, error) {
	users := make(map[domain.Role]*domain.User, len(demoUsers))

	for _, du := range demoUsers {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}

		user := &domain.User{
			Email:        du.Email,
			PasswordHash: string(passwordHash),
			Name:         du.Name,
			Role:         du.Role,
		}
		if err := repo.CreateUser(user); err != nil {
			return nil, fmt.Errorf("create demo user %s: %w", du.Email, err)
		}
		users[du.Role] = user
	}

	slog.Info("seeded demo users", "count", len(users))

	return users, nil
}

func ptr[T any](v T) *T {
	return &v
}

// DemoBoard populates a small content board: a handful of tasks sent for
// review by the creative user plus the campaigns the social tracker charts.
// Status changes go through the lifecycle gate like any other caller's.
func DemoBoard(repo *repository.Repository, users map[domain.Role]*domain.User) error {
	manager := users[domain.RoleManager]
	creative := users[domain.RoleCreativeTeam]

	titles := []struct {
		Title    string
		Priority domain.Priority
	}{
		{"New store awareness campaign", domain.PriorityHigh},
		{"Festival collection showcase", domain.PriorityMedium},
		{"Wedding collection promo", domain.PriorityUrgent},
		{"Social media campaign", domain.PriorityMedium},
		{"Product showcase", domain.PriorityLow},
	}

	actor := domain.Actor{ID: creative.ID, Role: creative.Role}

	for _, t := range titles {
		task := &domain.Task{
			Title:          t.Title,
			Requirement:    "New store awareness",
			ContentType:    domain.ContentTypeVideo,
			Priority:       t.Priority,
			AssigneeID:     ptr(manager.ID),
			CreatedByID:    creative.ID,
			BranchSpecific: ptr("Bhimavaram"),
			Format:         ptr("1350 x 1080 PX"),
			EventBased:     ptr("NO"),
			ThumbnailURL:   ptr("/placeholder.jpg"),
		}
		if err := repo.CreateTask(task); err != nil {
			return fmt.Errorf("create demo task %q: %w", t.Title, err)
		}
		if _, err := repo.TransitionTask(task.ID, domain.ActionSendForApproval, actor); err != nil {
			return fmt.Errorf("send demo task %q for approval: %w", t.Title, err)
		}
	}

	campaigns := []*domain.Campaign{
		{
			Name:        "Diwali Collection Launch",
			Platform:    domain.PlatformInstagram,
			StartDate:   "2025-01-25",
			Status:      domain.CampaignStatusActive,
			Budget:      50000,
			Spent:       18200,
			Reach:       45200,
			Impressions: 125000,
			Engagement:  8900,
			Conversions: 540,
		},
		{
			Name:        "Wedding Collection Showcase",
			Platform:    domain.PlatformYoutube,
			StartDate:   "2025-01-24",
			Status:      domain.CampaignStatusActive,
			Budget:      75000,
			Spent:       31000,
			Reach:       32100,
			Impressions: 98000,
			Engagement:  5200,
			Conversions: 310,
		},
		{
			Name:        "New Store Opening",
			Platform:    domain.PlatformFacebook,
			StartDate:   "2025-01-23",
			Status:      domain.CampaignStatusCompleted,
			Budget:      30000,
			Spent:       30000,
			Reach:       28500,
			Impressions: 75000,
			Engagement:  4100,
			Conversions: 260,
		},
		{
			Name:        "Behind The Scenes",
			Platform:    domain.PlatformInstagram,
			StartDate:   "2025-01-22",
			Status:      domain.CampaignStatusPaused,
			Budget:      10000,
			Spent:       4300,
			Reach:       21300,
			Impressions: 62000,
			Engagement:  3800,
			Conversions: 120,
		},
	}

	for _, campaign := range campaigns {
		campaign.CreatedByID = manager.ID
		if err := repo.CreateCampaign(campaign); err != nil {
			return fmt.Errorf("create demo campaign %q: %w", campaign.Name, err)
		}
	}

	slog.Info("seeded demo board", "tasks", len(titles), "campaigns", len(campaigns))

	return nil
}
