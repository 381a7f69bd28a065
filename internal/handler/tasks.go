package handler

import (
	"net/http"

	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/repository"
)

func (h *Handler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Status      string `validate:"omitempty,oneof=draft in_review approved rejected completed"`
		AssigneeID  string
		CreatedByID string
	}
	query.Status = r.URL.Query().Get("status")
	query.AssigneeID = r.URL.Query().Get("assigneeId")
	query.CreatedByID = r.URL.Query().Get("createdById")

	if err := h.validate.Struct(query); err != nil {
		h.badRequest(w, r, err)
		return
	}

	filter := repository.TaskFilter{}
	if query.Status != "" {
		status := domain.TaskStatus(query.Status)
		filter.Status = &status
	}
	if query.AssigneeID != "" {
		filter.AssigneeID = &query.AssigneeID
	}
	if query.CreatedByID != "" {
		filter.CreatedByID = &query.CreatedByID
	}

	tasks, err := h.repository.GetAllTasks(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "tasks fetched", tasks)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          string   `json:"title" validate:"required"`
		Requirement    string   `json:"requirement" validate:"required"`
		ContentType    string   `json:"contentType" validate:"required,oneof=image video carousel text"`
		Platform       *string  `json:"platform" validate:"omitempty,oneof=instagram facebook youtube twitter linkedin tiktok"`
		Campaign       *string  `json:"campaign"`
		DueDate        *string  `json:"dueDate"`
		Priority       string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
		AssigneeID     *string  `json:"assigneeId"`
		BranchSpecific *string  `json:"branchSpecific"`
		Format         *string  `json:"format"`
		EventBased     *string  `json:"eventBased"`
		Reference      *string  `json:"reference"`
		ThumbnailURL   *string  `json:"thumbnailUrl"`
		Tags           []string `json:"tags"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// The creator is always the logged-in user
	task := &domain.Task{
		Title:          req.Title,
		Requirement:    req.Requirement,
		ContentType:    domain.ContentType(req.ContentType),
		Campaign:       req.Campaign,
		DueDate:        req.DueDate,
		Priority:       domain.Priority(req.Priority),
		AssigneeID:     req.AssigneeID,
		CreatedByID:    h.actor(r).ID,
		BranchSpecific: req.BranchSpecific,
		Format:         req.Format,
		EventBased:     req.EventBased,
		Reference:      req.Reference,
		ThumbnailURL:   req.ThumbnailURL,
		Tags:           req.Tags,
	}
	if req.Platform != nil {
		platform := domain.Platform(*req.Platform)
		task.Platform = &platform
	}

	if err := h.repository.CreateTask(task); err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "task created", task)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(TaskCtx).(*domain.Task)
	h.successResponse(w, r, "task fetched", task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          *string  `json:"title"`
		Requirement    *string  `json:"requirement"`
		ContentType    *string  `json:"contentType" validate:"omitempty,oneof=image video carousel text"`
		Platform       *string  `json:"platform" validate:"omitempty,oneof=instagram facebook youtube twitter linkedin tiktok"`
		Campaign       *string  `json:"campaign"`
		DueDate        *string  `json:"dueDate"`
		Priority       *string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
		AssigneeID     *string  `json:"assigneeId"`
		BranchSpecific *string  `json:"branchSpecific"`
		Format         *string  `json:"format"`
		EventBased     *string  `json:"eventBased"`
		Reference      *string  `json:"reference"`
		ThumbnailURL   *string  `json:"thumbnailUrl"`
		Tags           []string `json:"tags"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := repository.TaskPatch{
		Title:          req.Title,
		Requirement:    req.Requirement,
		Campaign:       req.Campaign,
		DueDate:        req.DueDate,
		AssigneeID:     req.AssigneeID,
		BranchSpecific: req.BranchSpecific,
		Format:         req.Format,
		EventBased:     req.EventBased,
		Reference:      req.Reference,
		ThumbnailURL:   req.ThumbnailURL,
		Tags:           req.Tags,
	}
	if req.ContentType != nil {
		contentType := domain.ContentType(*req.ContentType)
		patch.ContentType = &contentType
	}
	if req.Platform != nil {
		platform := domain.Platform(*req.Platform)
		patch.Platform = &platform
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}

	task := r.Context().Value(TaskCtx).(*domain.Task)

	updated, err := h.repository.UpdateTask(task.ID, patch)
	if err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "task updated", updated)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(TaskCtx).(*domain.Task)

	if err := h.repository.DeleteTask(task.ID); err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "task deleted", nil)
}

// TransitionTask is the only way a task's status changes. The lifecycle gate
// decides inside the store, under its lock.
func (h *Handler) TransitionTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action" validate:"required,oneof=send_for_approval approve reject complete"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	task := r.Context().Value(TaskCtx).(*domain.Task)

	updated, err := h.repository.TransitionTask(task.ID, domain.Action(req.Action), h.actor(r))
	if err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "task transitioned", updated)
}

// GetTaskActions tells the UI which lifecycle buttons to show. It is
// informational only, the transition endpoint re-checks every request.
func (h *Handler) GetTaskActions(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(TaskCtx).(*domain.Task)

	h.successResponse(w, r, "actions fetched", domain.VisibleActions(task, h.actor(r)))
}

func (h *Handler) GetTaskComments(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(TaskCtx).(*domain.Task)

	comments, err := h.repository.GetTaskComments(task.ID)
	if err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "comments fetched", comments)
}

func (h *Handler) CreateTaskComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Comment string `json:"comment" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	task := r.Context().Value(TaskCtx).(*domain.Task)

	comment := &domain.TaskComment{
		TaskID:  task.ID,
		UserID:  h.actor(r).ID,
		Comment: req.Comment,
	}

	if err := h.repository.CreateTaskComment(comment); err != nil {
		h.domainFailure(w, r, err)
		return
	}

	h.successResponse(w, r, "comment added", comment)
}
