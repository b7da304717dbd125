package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"botlist-backend/internal/features/subscription/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.SubscriptionRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Subscribe(ctx context.Context, chatID, userID int64) error {
	// The conditional upsert touches zero rows only when the chat is
	// already actively subscribed.
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (chat_id, user_id, active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (chat_id) DO UPDATE SET active = TRUE
		WHERE subscriptions.active = FALSE
	`, chatID, userID)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrAlreadySubscribed
	}
	return nil
}

func (r *postgresRepository) Unsubscribe(ctx context.Context, chatID int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE subscriptions SET active = FALSE WHERE chat_id = $1 AND active = TRUE", chatID)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrSubscriptionNotFound
	}
	return nil
}

func (r *postgresRepository) IsSubscribed(ctx context.Context, chatID int64) (bool, error) {
	var subscribed bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM subscriptions WHERE chat_id = $1 AND active = TRUE)",
		chatID).Scan(&subscribed)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return subscribed, nil
}

func (r *postgresRepository) ListActiveChatIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT chat_id FROM subscriptions WHERE active = TRUE")
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	chatIDs := []int64{}
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, fmt.Errorf("failed to scan chat id: %w", err)
		}
		chatIDs = append(chatIDs, chatID)
	}
	return chatIDs, rows.Err()
}
