package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botlist-backend/internal/common/apperr"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	catalogrepo "botlist-backend/internal/features/catalog/repository"
	"botlist-backend/internal/features/submission/models"
	"botlist-backend/internal/features/submission/repository"
	usermodels "botlist-backend/internal/features/user/models"
)

// stubBotRepo overrides only the catalog methods this service touches;
// anything else panics, which would mean the test exercises an unexpected
// path.
type stubBotRepo struct {
	catalogrepo.BotRepository
	published map[string]*catalogmodels.Bot
	submitted []*catalogmodels.Bot
}

func (r *stubBotRepo) GetByUsername(ctx context.Context, username string) (*catalogmodels.Bot, error) {
	bot, ok := r.published[username]
	if !ok {
		return nil, catalogrepo.ErrBotNotFound
	}
	return bot, nil
}

func (r *stubBotRepo) ListBySubmitter(ctx context.Context, userID int64) ([]*catalogmodels.Bot, error) {
	return r.submitted, nil
}

type fakeSubmissionRepo struct {
	pending map[int64]*models.Submission
	settled map[int64]string
	nextID  int64
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		pending: map[int64]*models.Submission{},
		settled: map[int64]string{},
	}
}

func (r *fakeSubmissionRepo) HasPendingByUsername(ctx context.Context, username string) (bool, error) {
	for _, submission := range r.pending {
		if submission.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubmissionRepo) Insert(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	r.nextID++
	stored := *submission
	stored.ID = r.nextID
	stored.Status = models.StatusPending
	r.pending[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeSubmissionRepo) ListPending(ctx context.Context, limit int) ([]*models.Submission, error) {
	out := []*models.Submission{}
	for _, submission := range r.pending {
		if len(out) == limit {
			break
		}
		out = append(out, submission)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) ListPendingByUser(ctx context.Context, userID int64) ([]*models.Submission, error) {
	out := []*models.Submission{}
	for _, submission := range r.pending {
		if submission.SubmittedBy == userID {
			out = append(out, submission)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) Approve(ctx context.Context, id int64) (*catalogmodels.Bot, error) {
	submission, ok := r.pending[id]
	if !ok {
		if _, settled := r.settled[id]; settled {
			return nil, repository.ErrAlreadyProcessed
		}
		return nil, repository.ErrSubmissionNotFound
	}
	delete(r.pending, id)
	r.settled[id] = models.StatusApproved
	return &catalogmodels.Bot{
		ID:          id,
		Username:    submission.Username,
		Name:        submission.Name,
		Description: submission.Description,
		CategoryID:  submission.CategoryID,
		Approved:    true,
	}, nil
}

func (r *fakeSubmissionRepo) Reject(ctx context.Context, id int64) error {
	if _, ok := r.pending[id]; !ok {
		if _, settled := r.settled[id]; settled {
			return repository.ErrAlreadyProcessed
		}
		return repository.ErrSubmissionNotFound
	}
	delete(r.pending, id)
	r.settled[id] = models.StatusRejected
	return nil
}

type stubUsers struct {
	user *usermodels.User
}

func (u stubUsers) GetOrCreate(ctx context.Context, telegramID int64, username, firstName *string) (*usermodels.User, error) {
	return u.user, nil
}

func (u stubUsers) Get(ctx context.Context, telegramID int64) (*usermodels.User, error) {
	if u.user == nil || u.user.TelegramID != telegramID {
		return nil, apperr.NotFound("User not found")
	}
	return u.user, nil
}

type stubAuth struct{ admin bool }

func (a stubAuth) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	return a.admin, nil
}

func newService(repo *fakeSubmissionRepo, bots *stubBotRepo, user *usermodels.User, admin bool) SubmissionService {
	return NewSubmissionService(repo, bots, stubUsers{user: user}, stubAuth{admin: admin})
}

func TestSubmitDefaults(t *testing.T) {
	repo := newFakeSubmissionRepo()
	bots := &stubBotRepo{published: map[string]*catalogmodels.Bot{}}
	svc := newService(repo, bots, &usermodels.User{ID: 1, TelegramID: 100}, false)

	created, err := svc.Submit(context.Background(), SubmitRequest{
		Username:   "@coolbot",
		TelegramID: 100,
		CategoryID: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, "coolbot", created.Username)
	assert.Equal(t, "coolbot", created.Name, "name should default to the handle")
	assert.Equal(t, catalogmodels.DefaultCategoryID, created.CategoryID)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestSubmitRejectsMissingUsername(t *testing.T) {
	svc := newService(newFakeSubmissionRepo(), &stubBotRepo{}, &usermodels.User{ID: 1}, false)

	_, err := svc.Submit(context.Background(), SubmitRequest{Username: "  @ ", TelegramID: 100})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestSubmitBannedUser(t *testing.T) {
	svc := newService(newFakeSubmissionRepo(), &stubBotRepo{}, &usermodels.User{ID: 1, Banned: true}, false)

	_, err := svc.Submit(context.Background(), SubmitRequest{Username: "coolbot", TelegramID: 100})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
	assert.Equal(t, "You are banned from submitting bots", apperr.PublicMessage(err))
}

func TestSubmitConflicts(t *testing.T) {
	repo := newFakeSubmissionRepo()
	bots := &stubBotRepo{published: map[string]*catalogmodels.Bot{
		"published": {ID: 1, Username: "published"},
	}}
	svc := newService(repo, bots, &usermodels.User{ID: 1, TelegramID: 100}, false)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitRequest{Username: "published", TelegramID: 100})
	require.Error(t, err)
	assert.Equal(t, "This bot is already in the BotList", apperr.PublicMessage(err))

	_, err = svc.Submit(ctx, SubmitRequest{Username: "queued", TelegramID: 100})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, SubmitRequest{Username: "@queued", TelegramID: 100})
	require.Error(t, err)
	assert.Equal(t, "This bot has already been submitted and is pending review", apperr.PublicMessage(err))
}

func TestUserSubmissionsUnknownUser(t *testing.T) {
	svc := newService(newFakeSubmissionRepo(), &stubBotRepo{}, &usermodels.User{ID: 1, TelegramID: 100}, false)

	result, err := svc.UserSubmissions(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, result.Approved)
	assert.Empty(t, result.Pending)
}

func TestApproveLifecycle(t *testing.T) {
	repo := newFakeSubmissionRepo()
	bots := &stubBotRepo{published: map[string]*catalogmodels.Bot{}}
	svc := newService(repo, bots, &usermodels.User{ID: 1, TelegramID: 100}, true)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitRequest{Username: "coolbot", TelegramID: 100})
	require.NoError(t, err)

	bot, err := svc.Approve(ctx, 7, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "coolbot", bot.Username)
	assert.True(t, bot.Approved)

	_, err = svc.Approve(ctx, 7, created.ID)
	require.Error(t, err)
	assert.Equal(t, "Submission has already been processed", apperr.PublicMessage(err))

	_, err = svc.Approve(ctx, 7, 12345)
	require.Error(t, err)
	assert.Equal(t, "Submission not found", apperr.PublicMessage(err))
}

func TestRejectLifecycle(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := newService(repo, &stubBotRepo{published: map[string]*catalogmodels.Bot{}}, &usermodels.User{ID: 1, TelegramID: 100}, true)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitRequest{Username: "coolbot", TelegramID: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, 7, created.ID))

	err = svc.Reject(ctx, 7, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestModerationRequiresAdmin(t *testing.T) {
	svc := newService(newFakeSubmissionRepo(), &stubBotRepo{}, &usermodels.User{ID: 1}, false)
	ctx := context.Background()

	_, err := svc.ListPending(ctx, 7, 10)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))

	_, err = svc.Approve(ctx, 7, 1)
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", apperr.PublicMessage(err))

	err = svc.Reject(ctx, 7, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
}
