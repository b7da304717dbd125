package postgres

import (
	"context"
	"database/sql"
	"fmt"

	catalogmodels "botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/favorite/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.FavoriteRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Insert(ctx context.Context, userID, botID int64) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO favorites (user_id, bot_id) VALUES ($1, $2) ON CONFLICT (user_id, bot_id) DO NOTHING",
		userID, botID)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrAlreadyFavorited
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID, botID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND bot_id = $2", userID, botID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrFavoriteNotFound
	}
	return nil
}

func (r *postgresRepository) ListByTelegramID(ctx context.Context, telegramID int64) ([]*catalogmodels.Bot, error) {
	query := `
		SELECT b.id, b.name, b.username, b.description, b.category_id, b.submitted_by,
			b.approved, b.offline, b.spam, b.rating_count, b.rating_sum, b.created_at, b.updated_at
		FROM bots b
		INNER JOIN favorites f ON b.id = f.bot_id
		INNER JOIN users u ON f.user_id = u.id
		WHERE u.telegram_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	bots := []*catalogmodels.Bot{}
	for rows.Next() {
		var bot catalogmodels.Bot
		var submittedBy sql.NullInt64
		err := rows.Scan(&bot.ID, &bot.Name, &bot.Username, &bot.Description, &bot.CategoryID,
			&submittedBy, &bot.Approved, &bot.Offline, &bot.Spam,
			&bot.RatingCount, &bot.RatingSum, &bot.CreatedAt, &bot.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if submittedBy.Valid {
			bot.SubmittedBy = &submittedBy.Int64
		}
		bots = append(bots, &bot)
	}
	return bots, rows.Err()
}
