package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botlist-backend/internal/common/apperr"
	"botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/catalog/repository"
)

type fakeBotRepo struct {
	bots map[string]*models.Bot

	lastLimit  int
	lastFilter models.SearchFilter
	nextID     int64
}

func newFakeBotRepo(bots ...*models.Bot) *fakeBotRepo {
	repo := &fakeBotRepo{bots: map[string]*models.Bot{}}
	for _, bot := range bots {
		repo.bots[bot.Username] = bot
	}
	return repo
}

func (r *fakeBotRepo) all() []*models.Bot {
	out := make([]*models.Bot, 0, len(r.bots))
	for _, bot := range r.bots {
		out = append(out, bot)
	}
	return out
}

func (r *fakeBotRepo) ListAll(ctx context.Context) ([]*models.Bot, error) { return r.all(), nil }

func (r *fakeBotRepo) ListByCategory(ctx context.Context, categoryID int) ([]*models.Bot, error) {
	out := []*models.Bot{}
	for _, bot := range r.bots {
		if bot.CategoryID == categoryID {
			out = append(out, bot)
		}
	}
	return out, nil
}

func (r *fakeBotRepo) Search(ctx context.Context, filter models.SearchFilter) ([]*models.Bot, error) {
	r.lastFilter = filter
	return r.all(), nil
}

func (r *fakeBotRepo) Random(ctx context.Context, limit int) ([]*models.Bot, error) {
	r.lastLimit = limit
	return r.all(), nil
}

func (r *fakeBotRepo) Newest(ctx context.Context, limit int) ([]*models.Bot, error) {
	r.lastLimit = limit
	return r.all(), nil
}

func (r *fakeBotRepo) BestRated(ctx context.Context, limit int) ([]*models.Bot, error) {
	r.lastLimit = limit
	return r.all(), nil
}

func (r *fakeBotRepo) GetByUsername(ctx context.Context, username string) (*models.Bot, error) {
	bot, ok := r.bots[username]
	if !ok {
		return nil, repository.ErrBotNotFound
	}
	return bot, nil
}

func (r *fakeBotRepo) ListBySubmitter(ctx context.Context, userID int64) ([]*models.Bot, error) {
	out := []*models.Bot{}
	for _, bot := range r.bots {
		if bot.SubmittedBy != nil && *bot.SubmittedBy == userID {
			out = append(out, bot)
		}
	}
	return out, nil
}

func (r *fakeBotRepo) Insert(ctx context.Context, bot *models.Bot) (*models.Bot, error) {
	if _, ok := r.bots[bot.Username]; ok {
		return nil, repository.ErrBotExists
	}
	r.nextID++
	stored := *bot
	stored.ID = r.nextID
	stored.Approved = true
	r.bots[stored.Username] = &stored
	return &stored, nil
}

func (r *fakeBotRepo) Update(ctx context.Context, username string, update models.BotUpdate) (*models.Bot, error) {
	bot, ok := r.bots[username]
	if !ok {
		return nil, repository.ErrBotNotFound
	}
	if update.Name != nil {
		bot.Name = *update.Name
	}
	if update.Description != nil {
		bot.Description = *update.Description
	}
	if update.CategoryID != nil {
		bot.CategoryID = *update.CategoryID
	}
	return bot, nil
}

func (r *fakeBotRepo) SetOffline(ctx context.Context, botID int64) error {
	for _, bot := range r.bots {
		if bot.ID == botID {
			if bot.Offline {
				return repository.ErrBotOffline
			}
			bot.Offline = true
			return nil
		}
	}
	return repository.ErrBotNotFound
}

type staticAuth struct{ admin bool }

func (a staticAuth) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	return a.admin, nil
}

func TestCategoriesAreFixed(t *testing.T) {
	svc := NewCatalogService(newFakeBotRepo(), staticAuth{})

	categories := svc.Categories()
	require.Len(t, categories, 28)
	assert.Equal(t, 1, categories[0].ID)
	assert.Equal(t, 28, categories[len(categories)-1].ID)
}

func TestSearchValidation(t *testing.T) {
	svc := NewCatalogService(newFakeBotRepo(), staticAuth{})
	ctx := context.Background()

	_, err := svc.Search(ctx, "ab", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	_, err = svc.Search(ctx, "", "@Bot", "")
	require.Error(t, err)
	assert.Equal(t, "hmm... bot? be specific please!", apperr.PublicMessage(err))

	bots, err := svc.Search(ctx, "", "", "")
	require.NoError(t, err)
	assert.Empty(t, bots)
}

func TestSearchNormalizesUsername(t *testing.T) {
	repo := newFakeBotRepo()
	svc := NewCatalogService(repo, staticAuth{})

	_, err := svc.Search(context.Background(), "", "  @coolbot ", "")
	require.NoError(t, err)
	assert.Equal(t, "coolbot", repo.lastFilter.Username)
}

func TestRandomClampsLimit(t *testing.T) {
	repo := newFakeBotRepo()
	svc := NewCatalogService(repo, staticAuth{})
	ctx := context.Background()

	_, err := svc.Random(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastLimit, "zero should fall back to the default")

	_, err = svc.Random(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)

	_, err = svc.Newest(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}

func TestGetByUsername(t *testing.T) {
	repo := newFakeBotRepo(&models.Bot{ID: 1, Username: "coolbot", Name: "Cool"})
	svc := NewCatalogService(repo, staticAuth{})
	ctx := context.Background()

	bot, err := svc.GetByUsername(ctx, "@coolbot")
	require.NoError(t, err)
	assert.Equal(t, "coolbot", bot.Username)

	_, err = svc.GetByUsername(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	assert.Equal(t, "Bot not found", apperr.PublicMessage(err))
}

func TestAdminAdd(t *testing.T) {
	repo := newFakeBotRepo(&models.Bot{ID: 1, Username: "taken"})
	svc := NewCatalogService(repo, staticAuth{admin: true})
	ctx := context.Background()

	bot, err := svc.AdminAdd(ctx, 7, "@coolbot", "", "Cools drinks", 6)
	require.NoError(t, err)
	assert.Equal(t, "coolbot", bot.Username)
	assert.Equal(t, "coolbot", bot.Name, "name should default to the handle")

	_, err = svc.AdminAdd(ctx, 7, "taken", "Taken", "dup", 1)
	require.Error(t, err)
	assert.Equal(t, "This bot is already in the BotList", apperr.PublicMessage(err))

	_, err = svc.AdminAdd(ctx, 7, "other", "Other", "bad category", 99)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestAdminAddUnauthorized(t *testing.T) {
	svc := NewCatalogService(newFakeBotRepo(), staticAuth{admin: false})

	_, err := svc.AdminAdd(context.Background(), 7, "coolbot", "Cool", "desc", 1)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeForbidden))
	assert.Equal(t, "Unauthorized", apperr.PublicMessage(err))
}

func TestAdminUpdate(t *testing.T) {
	repo := newFakeBotRepo(&models.Bot{ID: 1, Username: "coolbot", Name: "Old", CategoryID: 1})
	svc := NewCatalogService(repo, staticAuth{admin: true})
	ctx := context.Background()

	name := "New Name"
	bot, err := svc.AdminUpdate(ctx, 7, "@coolbot", models.BotUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", bot.Name)
	assert.Equal(t, 1, bot.CategoryID, "omitted fields keep their value")

	_, err = svc.AdminUpdate(ctx, 7, "coolbot", models.BotUpdate{})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))

	_, err = svc.AdminUpdate(ctx, 7, "missing", models.BotUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "coolbot", NormalizeHandle(" @coolbot "))
	assert.Equal(t, "coolbot", NormalizeHandle("coolbot"))
	assert.Equal(t, "", NormalizeHandle("  @ "))
}
