package repository

import (
	"context"
	"errors"
)

var ErrAlreadyReported = errors.New("bot already reported by user")

type ReportRepository interface {
	// InsertSpamReport records the report; each user may flag a given
	// bot at most once.
	InsertSpamReport(ctx context.Context, botID, reportedBy int64, reason *string) error
}
