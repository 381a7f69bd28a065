package insights

import (
	"testing"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func tasksWithStatuses(statuses ...domain.TaskStatus) []*domain.Task {
	tasks := make([]*domain.Task, len(statuses))
	for i, status := range statuses {
		tasks[i] = &domain.Task{ID: string(rune('a' + i)), Status: status}
	}
	return tasks
}

func TestCountTasks(t *testing.T) {
	counts := CountTasks(tasksWithStatuses(
		domain.TaskStatusDraft,
		domain.TaskStatusDraft,
		domain.TaskStatusInReview,
		domain.TaskStatusApproved,
		domain.TaskStatusRejected,
		domain.TaskStatusCompleted,
	))

	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.InApproval)
	assert.Equal(t, 1, counts.Rejected)
	assert.Equal(t, 1, counts.Completed)
	// approved and completed both count as delivered
	assert.Equal(t, 2, counts.Delivered)
	assert.Equal(t, 6, counts.Total)
}

func TestCountTasks_Empty(t *testing.T) {
	assert.Equal(t, TaskCounts{}, CountTasks(nil))
}

func TestSummarizeCampaigns(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Platform: domain.PlatformInstagram, Status: domain.CampaignStatusActive, Budget: 50000, Spent: 18200, Reach: 45200, Impressions: 125000, Engagement: 8900, Conversions: 540},
		{Platform: domain.PlatformYoutube, Status: domain.CampaignStatusActive, Budget: 75000, Spent: 31000, Reach: 32100, Impressions: 98000, Engagement: 5200, Conversions: 310},
		{Platform: domain.PlatformInstagram, Status: domain.CampaignStatusPaused, Budget: 10000, Spent: 4300, Reach: 21300, Impressions: 62000, Engagement: 3800, Conversions: 120},
	}

	totals := SummarizeCampaigns(campaigns)

	assert.Equal(t, 3, totals.Campaigns)
	assert.Equal(t, 2, totals.Active)
	assert.Equal(t, 135000.0, totals.Budget)
	assert.Equal(t, 53500.0, totals.Spent)
	assert.Equal(t, int64(98600), totals.Reach)
	assert.Equal(t, int64(285000), totals.Impressions)
	assert.Equal(t, int64(17900), totals.Engagement)
	assert.Equal(t, int64(970), totals.Conversions)
	assert.InDelta(t, float64(17900)/float64(285000)*100, totals.EngagementRate, 1e-9)
}

func TestSummarizeCampaigns_NoImpressions(t *testing.T) {
	totals := SummarizeCampaigns([]*domain.Campaign{{Platform: domain.PlatformFacebook}})
	assert.Zero(t, totals.EngagementRate)
}

func TestSummarizeByPlatform(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Platform: domain.PlatformInstagram, Reach: 100, Impressions: 1000, Engagement: 50},
		{Platform: domain.PlatformInstagram, Reach: 200, Impressions: 1000, Engagement: 150},
		{Platform: domain.PlatformFacebook, Reach: 300},
	}

	byPlatform := SummarizeByPlatform(campaigns)

	assert.Len(t, byPlatform, 2)

	insta := byPlatform[domain.PlatformInstagram]
	assert.Equal(t, 2, insta.Campaigns)
	assert.Equal(t, int64(300), insta.Reach)
	assert.InDelta(t, 10.0, insta.EngagementRate, 1e-9)

	fb := byPlatform[domain.PlatformFacebook]
	assert.Equal(t, 1, fb.Campaigns)
	assert.Zero(t, fb.EngagementRate)
}
