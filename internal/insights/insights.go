// Package insights computes the read-only aggregates the dashboard charts
// consume. Everything here is a pure function over records handed in by the
// caller; nothing reads or writes the store.
package insights

import (
	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
)

type TaskCounts struct {
	Pending    int `json:"pending"`
	InApproval int `json:"inApproval"`
	Rejected   int `json:"rejected"`
	Completed  int `json:"completed"`
	// Delivered merges approved and completed: both are terminal-success
	// for the stats cards.
	Delivered int `json:"delivered"`
	Total     int `json:"total"`
}

func CountTasks(tasks []*domain.Task) TaskCounts {
	counts := TaskCounts{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusDraft:
			counts.Pending++
		case domain.TaskStatusInReview:
			counts.InApproval++
		case domain.TaskStatusRejected:
			counts.Rejected++
		case domain.TaskStatusApproved:
			counts.Delivered++
		case domain.TaskStatusCompleted:
			counts.Completed++
			counts.Delivered++
		}
	}
	return counts
}

type CampaignTotals struct {
	Campaigns   int     `json:"campaigns"`
	Active      int     `json:"active"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Reach       int64   `json:"reach"`
	Impressions int64   `json:"impressions"`
	Engagement  int64   `json:"engagement"`
	Conversions int64   `json:"conversions"`
	// EngagementRate is engagement over impressions as a percentage, 0 when
	// there are no impressions.
	EngagementRate float64 `json:"engagementRate"`
}

func addCampaign(totals *CampaignTotals, campaign *domain.Campaign) {
	totals.Campaigns++
	if campaign.Status == domain.CampaignStatusActive {
		totals.Active++
	}
	totals.Budget += campaign.Budget
	totals.Spent += campaign.Spent
	totals.Reach += campaign.Reach
	totals.Impressions += campaign.Impressions
	totals.Engagement += campaign.Engagement
	totals.Conversions += campaign.Conversions
}

func finishTotals(totals *CampaignTotals) {
	if totals.Impressions > 0 {
		totals.EngagementRate = float64(totals.Engagement) / float64(totals.Impressions) * 100
	}
}

func SummarizeCampaigns(campaigns []*domain.Campaign) CampaignTotals {
	totals := CampaignTotals{}
	for _, campaign := range campaigns {
		addCampaign(&totals, campaign)
	}
	finishTotals(&totals)
	return totals
}

func SummarizeByPlatform(campaigns []*domain.Campaign) map[domain.Platform]CampaignTotals {
	byPlatform := make(map[domain.Platform]CampaignTotals)
	for _, campaign := range campaigns {
		totals := byPlatform[campaign.Platform]
		addCampaign(&totals, campaign)
		byPlatform[campaign.Platform] = totals
	}
	for platform, totals := range byPlatform {
		finishTotals(&totals)
		byPlatform[platform] = totals
	}
	return byPlatform
}
