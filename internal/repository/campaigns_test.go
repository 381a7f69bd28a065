package repository

import (
	"testing"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCampaign(name string, platform domain.Platform) *domain.Campaign {
	return &domain.Campaign{
		Name:        name,
		Platform:    platform,
		StartDate:   "2025-01-25",
		Budget:      50000,
		CreatedByID: "u1",
	}
}

func TestCreateCampaign_Defaults(t *testing.T) {
	repo := NewRepository()

	campaign := newCampaign("Diwali Collection Launch", domain.PlatformInstagram)
	require.NoError(t, repo.CreateCampaign(campaign))

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	assert.Equal(t, campaign.CreatedAt, campaign.UpdatedAt)
}

func TestCreateCampaign_Validation(t *testing.T) {
	repo := NewRepository()

	var de *domain.Error

	err := repo.CreateCampaign(&domain.Campaign{Platform: domain.PlatformInstagram, CreatedByID: "u1"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)

	err = repo.CreateCampaign(&domain.Campaign{Name: "x", CreatedByID: "u1"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
}

func TestGetAllCampaigns_Filters(t *testing.T) {
	repo := NewRepository()

	insta := newCampaign("Diwali Collection Launch", domain.PlatformInstagram)
	require.NoError(t, repo.CreateCampaign(insta))

	yt := newCampaign("Wedding Collection Showcase", domain.PlatformYoutube)
	require.NoError(t, repo.CreateCampaign(yt))

	paused := newCampaign("Behind The Scenes", domain.PlatformInstagram)
	paused.Status = domain.CampaignStatusPaused
	require.NoError(t, repo.CreateCampaign(paused))

	all, err := repo.GetAllCampaigns(CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onInsta, err := repo.GetAllCampaigns(CampaignFilter{Platform: ptr(domain.PlatformInstagram)})
	require.NoError(t, err)
	assert.Len(t, onInsta, 2)

	activeInsta, err := repo.GetAllCampaigns(CampaignFilter{
		Platform: ptr(domain.PlatformInstagram),
		Status:   ptr(domain.CampaignStatusActive),
	})
	require.NoError(t, err)
	require.Len(t, activeInsta, 1)
	assert.Equal(t, insta.ID, activeInsta[0].ID)
}

func TestUpdateCampaign(t *testing.T) {
	repo := NewRepository()

	campaign := newCampaign("Diwali Collection Launch", domain.PlatformInstagram)
	require.NoError(t, repo.CreateCampaign(campaign))

	updated, err := repo.UpdateCampaign(campaign.ID, CampaignPatch{
		Spent:  ptr(18200.0),
		Reach:  ptr(int64(45200)),
		Status: ptr(domain.CampaignStatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, 18200.0, updated.Spent)
	assert.Equal(t, int64(45200), updated.Reach)
	assert.Equal(t, domain.CampaignStatusCompleted, updated.Status)
	assert.Equal(t, "Diwali Collection Launch", updated.Name)
	assert.True(t, updated.UpdatedAt.After(campaign.UpdatedAt))
}

func TestDeleteCampaign(t *testing.T) {
	repo := NewRepository()

	campaign := newCampaign("Diwali Collection Launch", domain.PlatformInstagram)
	require.NoError(t, repo.CreateCampaign(campaign))
	require.NoError(t, repo.DeleteCampaign(campaign.ID))

	var de *domain.Error
	_, err := repo.GetCampaignByID(campaign.ID)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindNotFound, de.Kind)
}
