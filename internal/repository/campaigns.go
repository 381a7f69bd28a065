package repository

import (
	"slices"
	"strings"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/google/uuid"
)

type CampaignFilter struct {
	Platform *domain.Platform
	Status   *domain.CampaignStatus
}

type CampaignPatch struct {
	Name        *string
	Platform    *domain.Platform
	StartDate   *string
	EndDate     *string
	Budget      *float64
	Spent       *float64
	Status      *domain.CampaignStatus
	Reach       *int64
	Impressions *int64
	Engagement  *int64
	Conversions *int64
}

func cloneCampaign(c *domain.Campaign) *domain.Campaign {
	cc := *c
	cc.EndDate = strPtr(c.EndDate)
	return &cc
}

func (r *Repository) CreateCampaign(campaign *domain.Campaign) error {
	if strings.TrimSpace(campaign.Name) == "" {
		return domain.ValidationError("campaign name is required")
	}
	if campaign.Platform == "" {
		return domain.ValidationError("campaign platform is required")
	}
	if campaign.CreatedByID == "" {
		return domain.ValidationError("campaign creator is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	campaign.ID = uuid.NewString()
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusActive
	}
	now := touch(campaign.CreatedAt)
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	r.campaigns[campaign.ID] = cloneCampaign(campaign)

	return nil
}

func (r *Repository) GetCampaignByID(id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, domain.NotFoundError("campaign %q does not exist", id)
	}

	return cloneCampaign(campaign), nil
}

func (r *Repository) GetAllCampaigns(filter CampaignFilter) ([]*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaigns := make([]*domain.Campaign, 0)
	for _, campaign := range r.campaigns {
		if filter.Platform != nil && campaign.Platform != *filter.Platform {
			continue
		}
		if filter.Status != nil && campaign.Status != *filter.Status {
			continue
		}
		campaigns = append(campaigns, cloneCampaign(campaign))
	}

	slices.SortFunc(campaigns, func(a, b *domain.Campaign) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return campaigns, nil
}

func (r *Repository) UpdateCampaign(id string, patch CampaignPatch) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, domain.NotFoundError("campaign %q does not exist", id)
	}

	if patch.Name != nil {
		campaign.Name = *patch.Name
	}
	if patch.Platform != nil {
		campaign.Platform = *patch.Platform
	}
	if patch.StartDate != nil {
		campaign.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		campaign.EndDate = strPtr(patch.EndDate)
	}
	if patch.Budget != nil {
		campaign.Budget = *patch.Budget
	}
	if patch.Spent != nil {
		campaign.Spent = *patch.Spent
	}
	if patch.Status != nil {
		campaign.Status = *patch.Status
	}
	if patch.Reach != nil {
		campaign.Reach = *patch.Reach
	}
	if patch.Impressions != nil {
		campaign.Impressions = *patch.Impressions
	}
	if patch.Engagement != nil {
		campaign.Engagement = *patch.Engagement
	}
	if patch.Conversions != nil {
		campaign.Conversions = *patch.Conversions
	}

	campaign.UpdatedAt = touch(campaign.UpdatedAt)

	return cloneCampaign(campaign), nil
}

func (r *Repository) DeleteCampaign(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return domain.NotFoundError("campaign %q does not exist", id)
	}

	delete(r.campaigns, id)

	return nil
}
