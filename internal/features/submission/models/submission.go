package models

import (
	"time"

	catalogmodels "botlist-backend/internal/features/catalog/models"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is a bot awaiting moderation. Submitter fields are only
// populated on joined reads used by the review queue.
type Submission struct {
	ID                  int64     `json:"id"`
	Username            string    `json:"username"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	CategoryID          int       `json:"category_id"`
	SubmittedBy         int64     `json:"submitted_by"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	SubmitterUsername   *string   `json:"submitter_username,omitempty"`
	SubmitterTelegramID *int64    `json:"submitter_telegram_id,omitempty"`
}

// UserSubmissions groups everything a user has contributed, split by
// moderation outcome.
type UserSubmissions struct {
	Approved []*catalogmodels.Bot `json:"approved"`
	Pending  []*Submission        `json:"pending"`
}
