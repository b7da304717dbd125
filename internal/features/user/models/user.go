package models

import (
	"time"

	catalogmodels "botlist-backend/internal/features/catalog/models"
	submissionmodels "botlist-backend/internal/features/submission/models"
)

// User is keyed by the external telegram account id; rows are created
// lazily on first interaction and never deleted.
type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   *string   `json:"username"`
	FirstName  *string   `json:"first_name"`
	Banned     bool      `json:"banned"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}

// SpamReportSummary is a spam report as shown in the admin user profile.
type SpamReportSummary struct {
	ID          int64     `json:"id"`
	BotID       int64     `json:"bot_id"`
	BotUsername string    `json:"bot_username"`
	Reason      *string   `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserInfo is the admin view of a user and their catalog activity.
type UserInfo struct {
	User               *User                          `json:"user"`
	SubmittedBots      []*catalogmodels.Bot           `json:"submitted_bots"`
	PendingSubmissions []*submissionmodels.Submission `json:"pending_submissions"`
	SpamReports        []*SpamReportSummary           `json:"spam_reports"`
}
