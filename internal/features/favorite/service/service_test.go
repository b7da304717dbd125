package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botlist-backend/internal/common/apperr"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	"botlist-backend/internal/features/favorite/repository"
	usermodels "botlist-backend/internal/features/user/models"
	userrepo "botlist-backend/internal/features/user/repository"
)

type stubBotRepo struct {
	catalogrepo.BotRepository
	bots map[string]*catalogmodels.Bot
}

func (r *stubBotRepo) GetByUsername(ctx context.Context, username string) (*catalogmodels.Bot, error) {
	bot, ok := r.bots[username]
	if !ok {
		return nil, catalogrepo.ErrBotNotFound
	}
	return bot, nil
}

type pair struct{ userID, botID int64 }

type fakeFavoriteRepo struct {
	favorites map[pair]bool
	listed    []*catalogmodels.Bot
}

func (r *fakeFavoriteRepo) Insert(ctx context.Context, userID, botID int64) error {
	key := pair{userID, botID}
	if r.favorites[key] {
		return repository.ErrAlreadyFavorited
	}
	r.favorites[key] = true
	return nil
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, userID, botID int64) error {
	key := pair{userID, botID}
	if !r.favorites[key] {
		return repository.ErrFavoriteNotFound
	}
	delete(r.favorites, key)
	return nil
}

func (r *fakeFavoriteRepo) ListByTelegramID(ctx context.Context, telegramID int64) ([]*catalogmodels.Bot, error) {
	return r.listed, nil
}

type stubUserStore struct {
	userrepo.UserRepository
	user *usermodels.User
}

func (s *stubUserStore) GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error) {
	return s.user, nil
}

func (s *stubUserStore) GetByTelegramID(ctx context.Context, telegramID int64) (*usermodels.User, error) {
	if s.user == nil || s.user.TelegramID != telegramID {
		return nil, userrepo.ErrUserNotFound
	}
	return s.user, nil
}

func newTestService(favorites *fakeFavoriteRepo, bots *stubBotRepo, user *usermodels.User) FavoriteService {
	store := &stubUserStore{user: user}
	return NewFavoriteService(favorites, bots, store, store)
}

func TestAddFavorite(t *testing.T) {
	favorites := &fakeFavoriteRepo{favorites: map[pair]bool{}}
	bots := &stubBotRepo{bots: map[string]*catalogmodels.Bot{
		"coolbot": {ID: 10, Username: "coolbot"},
	}}
	svc := newTestService(favorites, bots, &usermodels.User{ID: 1, TelegramID: 100})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 100, "@coolbot"))

	err := svc.Add(ctx, 100, "coolbot")
	require.Error(t, err)
	assert.Equal(t, "Bot already in favorites", apperr.PublicMessage(err))

	err = svc.Add(ctx, 100, "missing")
	require.Error(t, err)
	assert.Equal(t, "Bot not found in the database", apperr.PublicMessage(err))

	err = svc.Add(ctx, 100, "")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestRemoveFavorite(t *testing.T) {
	favorites := &fakeFavoriteRepo{favorites: map[pair]bool{{1, 10}: true}}
	bots := &stubBotRepo{bots: map[string]*catalogmodels.Bot{
		"coolbot": {ID: 10, Username: "coolbot"},
	}}
	svc := newTestService(favorites, bots, &usermodels.User{ID: 1, TelegramID: 100})
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, 100, "coolbot"))

	err := svc.Remove(ctx, 100, "coolbot")
	require.Error(t, err)
	assert.Equal(t, "Favorite not found", apperr.PublicMessage(err))

	err = svc.Remove(ctx, 999, "coolbot")
	require.Error(t, err)
	assert.Equal(t, "User not found", apperr.PublicMessage(err))
}

func TestListFavorites(t *testing.T) {
	favorites := &fakeFavoriteRepo{
		favorites: map[pair]bool{},
		listed:    []*catalogmodels.Bot{{ID: 10, Username: "coolbot"}},
	}
	svc := newTestService(favorites, &stubBotRepo{}, &usermodels.User{ID: 1, TelegramID: 100})

	bots, err := svc.List(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, bots, 1)
	assert.Equal(t, "coolbot", bots[0].Username)
}
