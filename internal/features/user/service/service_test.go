package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botlist-backend/internal/common/apperr"
	"botlist-backend/internal/common/config"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	submissionmodels "botlist-backend/internal/features/submission/models"
	"botlist-backend/internal/features/user/models"
	"botlist-backend/internal/features/user/repository"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[int64]*models.User{}}
	for _, user := range users {
		repo.users[user.TelegramID] = user
		if user.ID > repo.nextID {
			repo.nextID = user.ID
		}
	}
	return repo
}

func (r *fakeUserRepo) GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*models.User, error) {
	if user, ok := r.users[telegramID]; ok {
		return user, nil
	}
	r.nextID++
	user := &models.User{ID: r.nextID, TelegramID: telegramID, Username: username, FirstName: firstName}
	r.users[telegramID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user, ok := r.users[telegramID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Ban(ctx context.Context, telegramID int64) error {
	user, err := r.GetOrCreate(ctx, telegramID, nil, nil)
	if err != nil {
		return err
	}
	user.Banned = true
	return nil
}

func (r *fakeUserRepo) Unban(ctx context.Context, telegramID int64) error {
	user, ok := r.users[telegramID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Banned = false
	return nil
}

func (r *fakeUserRepo) ListSpamReports(ctx context.Context, userID int64) ([]*models.SpamReportSummary, error) {
	return []*models.SpamReportSummary{}, nil
}

type stubBots struct{}

func (stubBots) ListBySubmitter(ctx context.Context, userID int64) ([]*catalogmodels.Bot, error) {
	return []*catalogmodels.Bot{{ID: 1, Username: "coolbot"}}, nil
}

type stubSubmissions struct{}

func (stubSubmissions) ListPendingByUser(ctx context.Context, userID int64) ([]*submissionmodels.Submission, error) {
	return []*submissionmodels.Submission{}, nil
}

func configWithAdmins(ids ...int64) *config.Config {
	cfg := &config.Config{}
	cfg.Telegram.AdminIDs = ids
	return cfg
}

func TestIsAdminChecksConfigFirst(t *testing.T) {
	// Telegram id 7 is on the allow-list but has no row at all.
	repo := newFakeUserRepo()
	svc := NewUserService(repo, configWithAdmins(7), stubBots{}, stubSubmissions{})
	ctx := context.Background()

	isAdmin, err := svc.IsAdmin(ctx, 7)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, 8)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIsAdminFromStore(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: 1, TelegramID: 8, IsAdmin: true})
	svc := NewUserService(repo, configWithAdmins(), stubBots{}, stubSubmissions{})

	isAdmin, err := svc.IsAdmin(context.Background(), 8)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestIsBannedUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), configWithAdmins(), stubBots{}, stubSubmissions{})

	banned, err := svc.IsBanned(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestBanRequiresAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, configWithAdmins(7), stubBots{}, stubSubmissions{})
	ctx := context.Background()

	err := svc.Ban(ctx, 8, 100)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
	assert.Equal(t, "Unauthorized", apperr.PublicMessage(err))

	require.NoError(t, svc.Ban(ctx, 7, 100))

	banned, err := svc.IsBanned(ctx, 100)
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestUnban(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: 1, TelegramID: 100, Banned: true})
	svc := NewUserService(repo, configWithAdmins(7), stubBots{}, stubSubmissions{})
	ctx := context.Background()

	require.NoError(t, svc.Unban(ctx, 7, 100))

	banned, err := svc.IsBanned(ctx, 100)
	require.NoError(t, err)
	assert.False(t, banned)

	err = svc.Unban(ctx, 7, 999)
	require.Error(t, err)
	assert.Equal(t, "User not found", apperr.PublicMessage(err))
}

func TestUserInfo(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: 1, TelegramID: 100})
	svc := NewUserService(repo, configWithAdmins(7), stubBots{}, stubSubmissions{})
	ctx := context.Background()

	info, err := svc.UserInfo(ctx, 7, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), info.User.TelegramID)
	assert.Len(t, info.SubmittedBots, 1)
	assert.Empty(t, info.PendingSubmissions)
	assert.NotNil(t, info.SpamReports)

	_, err = svc.UserInfo(ctx, 7, 999)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	_, err = svc.UserInfo(ctx, 8, 100)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
}
