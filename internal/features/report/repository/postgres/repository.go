package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"botlist-backend/internal/features/report/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.ReportRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) InsertSpamReport(ctx context.Context, botID, reportedBy int64, reason *string) error {
	var reasonValue sql.NullString
	if reason != nil {
		reasonValue = sql.NullString{String: *reason, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO spam_reports (bot_id, reported_by, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (bot_id, reported_by) DO NOTHING
	`, botID, reportedBy, reasonValue)
	if err != nil {
		return fmt.Errorf("failed to insert spam report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrAlreadyReported
	}
	return nil
}
