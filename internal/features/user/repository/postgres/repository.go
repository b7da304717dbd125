package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"botlist-backend/internal/features/user/models"
	"botlist-backend/internal/features/user/repository"
)

const userColumns = "id, telegram_id, username, first_name, banned, is_admin, created_at"

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.UserRepository {
	return &postgresRepository{db: db}
}

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var user models.User
	var username, firstName sql.NullString
	err := row.Scan(&user.ID, &user.TelegramID, &username, &firstName,
		&user.Banned, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	if username.Valid {
		user.Username = &username.String
	}
	if firstName.Valid {
		user.FirstName = &firstName.String
	}
	return &user, nil
}

func (r *postgresRepository) GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*models.User, error) {
	// DO NOTHING keeps the first-seen profile; the follow-up select covers
	// both the freshly inserted and the pre-existing row.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (telegram_id, username, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (telegram_id) DO NOTHING
	`, telegramID, nullString(username), nullString(firstName))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return r.GetByTelegramID(ctx, telegramID)
}

func (r *postgresRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE telegram_id = $1", telegramID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *postgresRepository) Ban(ctx context.Context, telegramID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (telegram_id, banned)
		VALUES ($1, TRUE)
		ON CONFLICT (telegram_id) DO UPDATE SET banned = TRUE
	`, telegramID)
	if err != nil {
		return fmt.Errorf("failed to ban user: %w", err)
	}
	return nil
}

func (r *postgresRepository) Unban(ctx context.Context, telegramID int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET banned = FALSE WHERE telegram_id = $1", telegramID)
	if err != nil {
		return fmt.Errorf("failed to unban user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) ListSpamReports(ctx context.Context, userID int64) ([]*models.SpamReportSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sr.id, sr.bot_id, b.username, sr.reason, sr.created_at
		FROM spam_reports sr
		JOIN bots b ON sr.bot_id = b.id
		WHERE sr.reported_by = $1
		ORDER BY sr.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spam reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.SpamReportSummary{}
	for rows.Next() {
		var report models.SpamReportSummary
		var reason sql.NullString
		if err := rows.Scan(&report.ID, &report.BotID, &report.BotUsername, &reason, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spam report: %w", err)
		}
		if reason.Valid {
			report.Reason = &reason.String
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
