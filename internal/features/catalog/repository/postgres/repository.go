package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"botlist-backend/internal/features/catalog/models"
	"botlist-backend/internal/features/catalog/repository"
)

const botColumns = `id, name, username, description, category_id, submitted_by,
	approved, offline, spam, rating_count, rating_sum, created_at, updated_at`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.BotRepository {
	return &postgresRepository{db: db}
}

func scanBot(row interface{ Scan(...interface{}) error }) (*models.Bot, error) {
	var bot models.Bot
	var submittedBy sql.NullInt64
	err := row.Scan(
		&bot.ID, &bot.Name, &bot.Username, &bot.Description, &bot.CategoryID,
		&submittedBy, &bot.Approved, &bot.Offline, &bot.Spam,
		&bot.RatingCount, &bot.RatingSum, &bot.CreatedAt, &bot.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if submittedBy.Valid {
		bot.SubmittedBy = &submittedBy.Int64
	}
	return &bot, nil
}

func (r *postgresRepository) queryBots(ctx context.Context, query string, args ...interface{}) ([]*models.Bot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bots: %w", err)
	}
	defer rows.Close()

	bots := []*models.Bot{}
	for rows.Next() {
		bot, err := scanBot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bot: %w", err)
		}
		bots = append(bots, bot)
	}
	return bots, rows.Err()
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]*models.Bot, error) {
	return r.queryBots(ctx, "SELECT "+botColumns+" FROM bots")
}

func (r *postgresRepository) ListByCategory(ctx context.Context, categoryID int) ([]*models.Bot, error) {
	return r.queryBots(ctx, "SELECT "+botColumns+" FROM bots WHERE category_id = $1", categoryID)
}

func (r *postgresRepository) Search(ctx context.Context, filter models.SearchFilter) ([]*models.Bot, error) {
	var conditions []string
	var args []interface{}

	add := func(column, term string) {
		args = append(args, "%"+term+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}
	if filter.Name != "" {
		add("name", filter.Name)
	}
	if filter.Username != "" {
		add("username", filter.Username)
	}
	if filter.Description != "" {
		add("description", filter.Description)
	}
	if len(conditions) == 0 {
		return []*models.Bot{}, nil
	}

	// Each provided field is an independent condition; a bot matches if
	// any one of them matches.
	query := "SELECT " + botColumns + " FROM bots WHERE " + strings.Join(conditions, " OR ")
	return r.queryBots(ctx, query, args...)
}

func (r *postgresRepository) Random(ctx context.Context, limit int) ([]*models.Bot, error) {
	return r.queryBots(ctx, "SELECT "+botColumns+" FROM bots ORDER BY random() LIMIT $1", limit)
}

func (r *postgresRepository) Newest(ctx context.Context, limit int) ([]*models.Bot, error) {
	return r.queryBots(ctx, "SELECT "+botColumns+" FROM bots ORDER BY created_at DESC LIMIT $1", limit)
}

func (r *postgresRepository) BestRated(ctx context.Context, limit int) ([]*models.Bot, error) {
	query := `
		SELECT ` + botColumns + `
		FROM bots
		WHERE rating_count > 0
		ORDER BY rating_sum::float / rating_count DESC, rating_count DESC
		LIMIT $1
	`
	bots, err := r.queryBots(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	for _, bot := range bots {
		bot.AvgRating = bot.AverageRating()
	}
	return bots, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*models.Bot, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+botColumns+" FROM bots WHERE lower(username) = lower($1)", username)

	bot, err := scanBot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBotNotFound
		}
		return nil, fmt.Errorf("failed to get bot by username: %w", err)
	}
	return bot, nil
}

func (r *postgresRepository) ListBySubmitter(ctx context.Context, userID int64) ([]*models.Bot, error) {
	return r.queryBots(ctx, "SELECT "+botColumns+" FROM bots WHERE submitted_by = $1", userID)
}

func (r *postgresRepository) Insert(ctx context.Context, bot *models.Bot) (*models.Bot, error) {
	query := `
		INSERT INTO bots (name, username, description, category_id, submitted_by, approved)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING ` + botColumns

	var submittedBy sql.NullInt64
	if bot.SubmittedBy != nil {
		submittedBy = sql.NullInt64{Int64: *bot.SubmittedBy, Valid: true}
	}

	created, err := scanBot(r.db.QueryRowContext(ctx, query,
		bot.Name, bot.Username, bot.Description, bot.CategoryID, submittedBy))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrBotExists
		}
		return nil, fmt.Errorf("failed to insert bot: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, update models.BotUpdate) (*models.Bot, error) {
	query := `
		UPDATE bots
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			category_id = COALESCE($4, category_id),
			updated_at = now()
		WHERE lower(username) = lower($1)
		RETURNING ` + botColumns

	var name, description sql.NullString
	var categoryID sql.NullInt32
	if update.Name != nil {
		name = sql.NullString{String: *update.Name, Valid: true}
	}
	if update.Description != nil {
		description = sql.NullString{String: *update.Description, Valid: true}
	}
	if update.CategoryID != nil {
		categoryID = sql.NullInt32{Int32: int32(*update.CategoryID), Valid: true}
	}

	bot, err := scanBot(r.db.QueryRowContext(ctx, query, username, name, description, categoryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBotNotFound
		}
		return nil, fmt.Errorf("failed to update bot: %w", err)
	}
	return bot, nil
}

// SetOffline flags the bot; the WHERE guard makes the flip atomic so a
// racing duplicate report surfaces as ErrBotOffline.
func (r *postgresRepository) SetOffline(ctx context.Context, botID int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bots SET offline = TRUE, updated_at = now() WHERE id = $1 AND offline = FALSE", botID)
	if err != nil {
		return fmt.Errorf("failed to set bot offline: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrBotOffline
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
