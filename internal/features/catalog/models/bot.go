package models

import "time"

// Bot is a published catalog entry. Username is the bot's public handle,
// unique case-insensitively.
type Bot struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	CategoryID  int       `json:"category_id"`
	SubmittedBy *int64    `json:"submitted_by"`
	Approved    bool      `json:"approved"`
	Offline     bool      `json:"offline"`
	Spam        bool      `json:"spam"`
	RatingCount int       `json:"rating_count"`
	RatingSum   int       `json:"rating_sum"`
	AvgRating   float64   `json:"avg_rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AverageRating is rating_sum/rating_count, 0 when the bot has no ratings.
func (b *Bot) AverageRating() float64 {
	if b.RatingCount == 0 {
		return 0
	}
	return float64(b.RatingSum) / float64(b.RatingCount)
}

// SearchFilter holds normalized free-text search terms. Empty fields are
// absent; provided fields match as case-insensitive substrings, combined
// with OR.
type SearchFilter struct {
	Name        string
	Username    string
	Description string
}

func (f SearchFilter) Empty() bool {
	return f.Name == "" && f.Username == "" && f.Description == ""
}

// BotUpdate carries the admin-editable fields; nil means keep.
type BotUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *int    `json:"category_id"`
}

func (u BotUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.CategoryID == nil
}
