package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botlist-backend/internal/common/apperr"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	"botlist-backend/internal/features/report/repository"
	usermodels "botlist-backend/internal/features/user/models"
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

func (r *stubBotRepo) SetOffline(ctx context.Context, botID int64) error {
	for _, bot := range r.bots {
		if bot.ID == botID {
			if bot.Offline {
				return catalogrepo.ErrBotOffline
			}
			bot.Offline = true
			return nil
		}
	}
	return catalogrepo.ErrBotNotFound
}

type reportKey struct{ botID, reportedBy int64 }

type fakeReportRepo struct {
	reports map[reportKey]bool
}

func (r *fakeReportRepo) InsertSpamReport(ctx context.Context, botID, reportedBy int64, reason *string) error {
	key := reportKey{botID, reportedBy}
	if r.reports[key] {
		return repository.ErrAlreadyReported
	}
	r.reports[key] = true
	return nil
}

type stubUsers struct {
	user *usermodels.User
}

func (u stubUsers) GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error) {
	return u.user, nil
}

func TestReportSpam(t *testing.T) {
	reports := &fakeReportRepo{reports: map[reportKey]bool{}}
	bots := &stubBotRepo{bots: map[string]*catalogmodels.Bot{
		"spammy": {ID: 10, Username: "spammy"},
	}}
	svc := NewReportService(reports, bots, stubUsers{user: &usermodels.User{ID: 1, TelegramID: 100}})
	ctx := context.Background()

	require.NoError(t, svc.ReportSpam(ctx, 100, "@spammy", nil))

	err := svc.ReportSpam(ctx, 100, "spammy", nil)
	require.Error(t, err)
	assert.Equal(t, "You have already reported this bot", apperr.PublicMessage(err))

	err = svc.ReportSpam(ctx, 100, "missing", nil)
	require.Error(t, err)
	assert.Equal(t, "Bot not found in the database", apperr.PublicMessage(err))
}

func TestReportOffline(t *testing.T) {
	bots := &stubBotRepo{bots: map[string]*catalogmodels.Bot{
		"flaky": {ID: 10, Username: "flaky"},
	}}
	svc := NewReportService(&fakeReportRepo{reports: map[reportKey]bool{}}, bots,
		stubUsers{user: &usermodels.User{ID: 1, TelegramID: 100}})
	ctx := context.Background()

	require.NoError(t, svc.ReportOffline(ctx, 100, "flaky"))
	assert.True(t, bots.bots["flaky"].Offline)

	err := svc.ReportOffline(ctx, 100, "flaky")
	require.Error(t, err)
	assert.Equal(t, "This bot has already been reported as offline", apperr.PublicMessage(err))
}

func TestReportsFromBannedUser(t *testing.T) {
	bots := &stubBotRepo{bots: map[string]*catalogmodels.Bot{
		"target": {ID: 10, Username: "target"},
	}}
	svc := NewReportService(&fakeReportRepo{reports: map[reportKey]bool{}}, bots,
		stubUsers{user: &usermodels.User{ID: 1, TelegramID: 100, Banned: true}})
	ctx := context.Background()

	err := svc.ReportSpam(ctx, 100, "target", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
	assert.Equal(t, "You are banned from reporting", apperr.PublicMessage(err))

	err = svc.ReportOffline(ctx, 100, "target")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
}
