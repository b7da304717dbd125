package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	"botlist-backend/internal/features/submission/models"
	"botlist-backend/internal/features/submission/repository"
)

const submissionColumns = `id, username, name, description, category_id, submitted_by, status, created_at`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.SubmissionRepository {
	return &postgresRepository{db: db}
}

func scanSubmission(row interface{ Scan(...interface{}) error }) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(&s.ID, &s.Username, &s.Name, &s.Description, &s.CategoryID,
		&s.SubmittedBy, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) HasPendingByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM bot_submissions WHERE lower(username) = lower($1) AND status = 'pending')",
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending submission: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Insert(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	query := `
		INSERT INTO bot_submissions (username, name, description, category_id, submitted_by, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING ` + submissionColumns

	created, err := scanSubmission(r.db.QueryRowContext(ctx, query,
		submission.Username, submission.Name, submission.Description,
		submission.CategoryID, submission.SubmittedBy))
	if err != nil {
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) ListPending(ctx context.Context, limit int) ([]*models.Submission, error) {
	query := `
		SELECT s.id, s.username, s.name, s.description, s.category_id,
			s.submitted_by, s.status, s.created_at, u.username, u.telegram_id
		FROM bot_submissions s
		INNER JOIN users u ON s.submitted_by = u.id
		WHERE s.status = 'pending'
		ORDER BY s.created_at ASC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}
	defer rows.Close()

	submissions := []*models.Submission{}
	for rows.Next() {
		var s models.Submission
		var submitterUsername sql.NullString
		var submitterTelegramID int64
		err := rows.Scan(&s.ID, &s.Username, &s.Name, &s.Description, &s.CategoryID,
			&s.SubmittedBy, &s.Status, &s.CreatedAt, &submitterUsername, &submitterTelegramID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if submitterUsername.Valid {
			s.SubmitterUsername = &submitterUsername.String
		}
		s.SubmitterTelegramID = &submitterTelegramID
		submissions = append(submissions, &s)
	}
	return submissions, rows.Err()
}

func (r *postgresRepository) ListPendingByUser(ctx context.Context, userID int64) ([]*models.Submission, error) {
	query := "SELECT " + submissionColumns + " FROM bot_submissions WHERE submitted_by = $1 AND status = 'pending'"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user submissions: %w", err)
	}
	defer rows.Close()

	submissions := []*models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// Approve flips the pending row and promotes it to the catalog in one
// transaction. The guarded UPDATE means a second approver sees
// ErrAlreadyProcessed rather than a duplicate bot.
func (r *postgresRepository) Approve(ctx context.Context, id int64) (*catalogmodels.Bot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		UPDATE bot_submissions
		SET status = 'approved'
		WHERE id = $1 AND status = 'pending'
		RETURNING username, name, description, category_id, submitted_by
	`, id)

	var username, name, description string
	var categoryID int
	var submittedBy int64
	if err := row.Scan(&username, &name, &description, &categoryID, &submittedBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyProcessed(ctx, id)
		}
		return nil, fmt.Errorf("failed to approve submission: %w", err)
	}

	botRow := tx.QueryRowContext(ctx, `
		INSERT INTO bots (name, username, description, category_id, submitted_by, approved)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, name, username, description, category_id, submitted_by,
			approved, offline, spam, rating_count, rating_sum, created_at, updated_at
	`, name, username, description, categoryID, submittedBy)

	var bot catalogmodels.Bot
	var botSubmittedBy sql.NullInt64
	err = botRow.Scan(&bot.ID, &bot.Name, &bot.Username, &bot.Description, &bot.CategoryID,
		&botSubmittedBy, &bot.Approved, &bot.Offline, &bot.Spam,
		&bot.RatingCount, &bot.RatingSum, &bot.CreatedAt, &bot.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, catalogrepo.ErrBotExists
		}
		return nil, fmt.Errorf("failed to promote submission: %w", err)
	}
	if botSubmittedBy.Valid {
		bot.SubmittedBy = &botSubmittedBy.Int64
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	return &bot, nil
}

func (r *postgresRepository) Reject(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bot_submissions SET status = 'rejected' WHERE id = $1 AND status = 'pending'", id)
	if err != nil {
		return fmt.Errorf("failed to reject submission: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return r.classifyProcessed(ctx, id)
	}
	return nil
}

// classifyProcessed distinguishes a missing submission from one another
// admin already settled.
func (r *postgresRepository) classifyProcessed(ctx context.Context, id int64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM bot_submissions WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check submission: %w", err)
	}
	if exists {
		return repository.ErrAlreadyProcessed
	}
	return repository.ErrSubmissionNotFound
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
