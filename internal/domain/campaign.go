package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// Campaign is an informational record of a social-media push. It has no
// lifecycle gating, plain CRUD only.
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	StartDate   string         `json:"startDate"`
	EndDate     *string        `json:"endDate"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	Status      CampaignStatus `json:"status"`
	Reach       int64          `json:"reach"`
	Impressions int64          `json:"impressions"`
	Engagement  int64          `json:"engagement"`
	Conversions int64          `json:"conversions"`
	CreatedByID string         `json:"createdById"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
