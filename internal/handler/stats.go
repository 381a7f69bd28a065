package handler

import (
	"net/http"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/insights"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/repository"
)

func (h *Handler) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.repository.GetAllTasks(repository.TaskFilter{})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "task stats computed", insights.CountTasks(tasks))
}

func (h *Handler) GetCampaignStats(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.repository.GetAllCampaigns(repository.CampaignFilter{})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "campaign stats computed", struct {
		Totals     insights.CampaignTotals                      `json:"totals"`
		ByPlatform map[domain.Platform]insights.CampaignTotals `json:"byPlatform"`
	}{
		Totals:     insights.SummarizeCampaigns(campaigns),
		ByPlatform: insights.SummarizeByPlatform(campaigns),
	})
}
