package handler

import (
	"net/http"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/repository"
)

func (h *Handler) GetAllCampaigns(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Platform string `validate:"omitempty,oneof=instagram facebook youtube twitter linkedin tiktok"`
		Status   string `validate:"omitempty,oneof=active scheduled completed paused"`
	}
	query.Platform = r.URL.Query().Get("platform")
	query.Status = r.URL.Query().Get("status")

	if err := h.validate.Struct(query); err != nil {
		h.badRequest(w, r, err)
		return
	}

	filter := repository.CampaignFilter{}
	if query.Platform != "" {
		platform := domain.Platform(query.Platform)
		filter.Platform = &platform
	}
	if query.Status != "" {
		status := domain.CampaignStatus(query.Status)
		filter.Status = &status
	}

	campaigns, err := h.repository.GetAllCampaigns(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "campaigns fetched", campaigns)
}

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name" validate:"required"`
		Platform    string  `json:"platform" validate:"required,oneof=instagram facebook youtube twitter linkedin tiktok"`
		StartDate   string  `json:"startDate" validate:"required"`
		EndDate     *string `json:"endDate"`
		Budget      float64 `json:"budget" validate:"gte=0"`
		Spent       float64 `json:"spent" validate:"gte=0"`
		Status      string  `json:"status" validate:"omitempty,oneof=active scheduled completed paused"`
		Reach       int64   `json:"reach" validate:"gte=0"`
		Impressions int64   `json:"impressions" validate:"gte=0"`
		Engagement  int64   `json:"engagement" validate:"gte=0"`
		Conversions int64   `json:"conversions" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	campaign := &domain.Campaign{
		Name:        req.Name,
		Platform:    domain.Platform(req.Platform),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Spent:       req.Spent,
		Status:      domain.CampaignStatus(req.Status),
		Reach:       req.Reach,
		Impressions: req.Impressions,
		Engagement:  req.Engagement,
		Conversions: req.Conversions,
		CreatedByID: h.actor(r).ID,
	}

	if err := h.repository.CreateCampaign(campaign); err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "campaign created", campaign)
}

func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign := r.Context().Value(CampaignCtx).(*domain.Campaign)
	h.successResponse(w, r, "campaign fetched", campaign)
}

func (h *Handler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string  `json:"name"`
		Platform    *string  `json:"platform" validate:"omitempty,oneof=instagram facebook youtube twitter linkedin tiktok"`
		StartDate   *string  `json:"startDate"`
		EndDate     *string  `json:"endDate"`
		Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
		Spent       *float64 `json:"spent" validate:"omitempty,gte=0"`
		Status      *string  `json:"status" validate:"omitempty,oneof=active scheduled completed paused"`
		Reach       *int64   `json:"reach" validate:"omitempty,gte=0"`
		Impressions *int64   `json:"impressions" validate:"omitempty,gte=0"`
		Engagement  *int64   `json:"engagement" validate:"omitempty,gte=0"`
		Conversions *int64   `json:"conversions" validate:"omitempty,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := repository.CampaignPatch{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Spent:       req.Spent,
		Reach:       req.Reach,
		Impressions: req.Impressions,
		Engagement:  req.Engagement,
		Conversions: req.Conversions,
	}
	if req.Platform != nil {
		platform := domain.Platform(*req.Platform)
		patch.Platform = &platform
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		patch.Status = &status
	}

	campaign := r.Context().Value(CampaignCtx).(*domain.Campaign)

	updated, err := h.repository.UpdateCampaign(campaign.ID, patch)
	if err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "campaign updated", updated)
}

func (h *Handler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	campaign := r.Context().Value(CampaignCtx).(*domain.Campaign)

	if err := h.repository.DeleteCampaign(campaign.ID); err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "campaign deleted", nil)
}
