package repository

import (
	"context"
	"errors"
)

var (
	ErrAlreadySubscribed    = errors.New("already subscribed")
	ErrSubscriptionNotFound = errors.New("no active subscription")
)

type SubscriptionRepository interface {
	// Subscribe inserts or reactivates in one statement, so concurrent
	// subscribes resolve to exactly one active row per chat.
	Subscribe(ctx context.Context, chatID, userID int64) error
	Unsubscribe(ctx context.Context, chatID int64) error
	IsSubscribed(ctx context.Context, chatID int64) (bool, error)
	ListActiveChatIDs(ctx context.Context) ([]int64, error)
}
