package domain

import (
	"time"
)

type ContentType string

const (
	ContentTypeImage    ContentType = "image"
	ContentTypeVideo    ContentType = "video"
	ContentTypeCarousel ContentType = "carousel"
	ContentTypeText     ContentType = "text"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformYoutube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedin  Platform = "linkedin"
	PlatformTiktok    Platform = "tiktok"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type TaskStatus string

const (
	TaskStatusDraft     TaskStatus = "draft"
	TaskStatusInReview  TaskStatus = "in_review"
	TaskStatusApproved  TaskStatus = "approved"
	TaskStatusRejected  TaskStatus = "rejected"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a unit of content-production work. Optional fields are pointers so
// that "no value" survives a round trip through JSON and the patch merge in
// the repository can tell "clear" apart from "leave alone".
type Task struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Requirement    string      `json:"requirement"`
	ContentType    ContentType `json:"contentType"`
	Platform       *Platform   `json:"platform"`
	Campaign       *string     `json:"campaign"`
	DueDate        *string     `json:"dueDate"`
	Priority       Priority    `json:"priority"`
	Status         TaskStatus  `json:"status"`
	AssigneeID     *string     `json:"assigneeId"`
	CreatedByID    string      `json:"createdById"`
	BranchSpecific *string     `json:"branchSpecific"`
	Format         *string     `json:"format"`
	EventBased     *string     `json:"eventBased"`
	Reference      *string     `json:"reference"`
	ThumbnailURL   *string     `json:"thumbnailUrl"`
	Tags           []string    `json:"tags"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type TaskComment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
