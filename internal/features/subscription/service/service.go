package service

import (
	"context"
	"errors"

	"botlist-backend/internal/common/apperr"
	"botlist-backend/internal/features/subscription/repository"
	usermodels "botlist-backend/internal/features/user/models"
)

// UserResolver looks up or lazily creates the subscribing user.
type UserResolver interface {
	GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, chatID, telegramID int64) error
	Unsubscribe(ctx context.Context, chatID int64) error
	IsSubscribed(ctx context.Context, chatID int64) (bool, error)
	ActiveChatIDs(ctx context.Context) ([]int64, error)
}

type subscriptionService struct {
	repo  repository.SubscriptionRepository
	users UserResolver
}

func NewSubscriptionService(repo repository.SubscriptionRepository, users UserResolver) SubscriptionService {
	return &subscriptionService{repo: repo, users: users}
}

func (s *subscriptionService) Subscribe(ctx context.Context, chatID, telegramID int64) error {
	user, err := s.users.GetOrCreate(ctx, telegramID, nil, nil)
	if err != nil {
		return err
	}

	if err := s.repo.Subscribe(ctx, chatID, user.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			return apperr.Conflict("Already subscribed")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, chatID int64) error {
	if err := s.repo.Unsubscribe(ctx, chatID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return apperr.NotFound("No active subscription found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (s *subscriptionService) IsSubscribed(ctx context.Context, chatID int64) (bool, error) {
	subscribed, err := s.repo.IsSubscribed(ctx, chatID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return subscribed, nil
}

func (s *subscriptionService) ActiveChatIDs(ctx context.Context) ([]int64, error) {
	chatIDs, err := s.repo.ListActiveChatIDs(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return chatIDs, nil
}
