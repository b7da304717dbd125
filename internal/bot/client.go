package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	catalogmodels "botlist-backend/internal/features/catalog/models"
	submissionmodels "botlist-backend/internal/features/submission/models"
	usermodels "botlist-backend/internal/features/user/models"
)

// APIError is the decoded {"error": "..."} body of a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// IsAPIError reports whether err is an API error whose message contains
// the given fragment. The backend's error strings are stable, so command
// handlers branch on them the same way the HTTP clients do.
func IsAPIError(err error, fragment string) bool {
	apiErr, ok := err.(*APIError)
	return ok && strings.Contains(strings.ToLower(apiErr.Message), strings.ToLower(fragment))
}

// Client talks to the BotList REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil || envelope.Error == "" {
			envelope.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Categories(ctx context.Context) ([]catalogmodels.Category, error) {
	var categories []catalogmodels.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) BotsByCategory(ctx context.Context, categoryID int) ([]*catalogmodels.Bot, error) {
	var bots []*catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bots/category/%d", categoryID), nil, &bots)
	return bots, err
}

func (c *Client) RandomBots(ctx context.Context, limit int) ([]*catalogmodels.Bot, error) {
	var bots []*catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bots/random?limit=%d", limit), nil, &bots)
	return bots, err
}

func (c *Client) NewBots(ctx context.Context, limit int) ([]*catalogmodels.Bot, error) {
	var bots []*catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bots/new?limit=%d", limit), nil, &bots)
	return bots, err
}

func (c *Client) BestBots(ctx context.Context, limit int) ([]*catalogmodels.Bot, error) {
	var bots []*catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bots/best?limit=%d", limit), nil, &bots)
	return bots, err
}

// Search queries name and description with the same term unless the term
// is a handle, in which case it queries username only.
func (c *Client) Search(ctx context.Context, query string) ([]*catalogmodels.Bot, error) {
	params := url.Values{}
	if strings.HasPrefix(query, "@") {
		params.Set("username", strings.TrimLeft(query, "@"))
	} else {
		params.Set("name", query)
		params.Set("description", query)
	}

	var bots []*catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, "/search?"+params.Encode(), nil, &bots)
	return bots, err
}

func (c *Client) BotByUsername(ctx context.Context, username string) (*catalogmodels.Bot, error) {
	var bot catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, "/bots/username/"+url.PathEscape(username), nil, &bot)
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *Client) Favorites(ctx context.Context, telegramID int64) ([]*catalogmodels.Bot, error) {
	var bots []*catalogmodels.Bot
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/favorites", telegramID), nil, &bots)
	return bots, err
}

func (c *Client) AddFavorite(ctx context.Context, telegramID int64, botUsername string) error {
	body := map[string]interface{}{"bot_username": botUsername}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/favorites", telegramID), body, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, telegramID int64, botUsername string) error {
	endpoint := fmt.Sprintf("/users/%d/favorites/%s", telegramID, url.PathEscape(botUsername))
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) SubmitBot(ctx context.Context, telegramID int64, username, name, description string, categoryID int) error {
	body := map[string]interface{}{
		"username":    username,
		"name":        name,
		"description": description,
		"category_id": categoryID,
		"telegram_id": telegramID,
	}
	return c.do(ctx, http.MethodPost, "/submissions", body, nil)
}

func (c *Client) UserSubmissions(ctx context.Context, telegramID int64) (*submissionmodels.UserSubmissions, error) {
	var submissions submissionmodels.UserSubmissions
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/submissions", telegramID), nil, &submissions)
	if err != nil {
		return nil, err
	}
	return &submissions, nil
}

func (c *Client) Subscribe(ctx context.Context, chatID, telegramID int64) error {
	body := map[string]interface{}{"chat_id": chatID, "telegram_id": telegramID}
	return c.do(ctx, http.MethodPost, "/subscriptions", body, nil)
}

func (c *Client) Unsubscribe(ctx context.Context, chatID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/subscriptions/%d", chatID), nil, nil)
}

func (c *Client) ReportSpam(ctx context.Context, telegramID int64, botUsername string) error {
	body := map[string]interface{}{"bot_username": botUsername, "telegram_id": telegramID}
	return c.do(ctx, http.MethodPost, "/spam-reports", body, nil)
}

func (c *Client) ReportOffline(ctx context.Context, telegramID int64, botUsername string) error {
	body := map[string]interface{}{"bot_username": botUsername, "telegram_id": telegramID}
	return c.do(ctx, http.MethodPost, "/offline-reports", body, nil)
}

func (c *Client) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	var result struct {
		IsAdmin bool `json:"is_admin"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/check/%d", telegramID), nil, &result)
	return result.IsAdmin, err
}

func (c *Client) PendingSubmissions(ctx context.Context, adminID int64, limit int) ([]*submissionmodels.Submission, error) {
	endpoint := fmt.Sprintf("/admin/submissions/pending?admin_id=%d&limit=%d", adminID, limit)
	var submissions []*submissionmodels.Submission
	err := c.do(ctx, http.MethodGet, endpoint, nil, &submissions)
	return submissions, err
}

func (c *Client) ApproveSubmission(ctx context.Context, adminID, submissionID int64) (*catalogmodels.Bot, error) {
	body := map[string]interface{}{"admin_telegram_id": adminID}
	var bot catalogmodels.Bot
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/submissions/%d/approve", submissionID), body, &bot)
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *Client) RejectSubmission(ctx context.Context, adminID, submissionID int64) error {
	body := map[string]interface{}{"admin_telegram_id": adminID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/submissions/%d/reject", submissionID), body, nil)
}

func (c *Client) AdminAddBot(ctx context.Context, adminID int64, username, name, description string, categoryID int) (*catalogmodels.Bot, error) {
	body := map[string]interface{}{
		"username":          username,
		"name":              name,
		"description":       description,
		"category_id":       categoryID,
		"admin_telegram_id": adminID,
	}
	var bot catalogmodels.Bot
	err := c.do(ctx, http.MethodPost, "/admin/bots", body, &bot)
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *Client) AdminUpdateBot(ctx context.Context, adminID int64, username string, update catalogmodels.BotUpdate) (*catalogmodels.Bot, error) {
	body := map[string]interface{}{"admin_telegram_id": adminID}
	if update.Name != nil {
		body["name"] = *update.Name
	}
	if update.Description != nil {
		body["description"] = *update.Description
	}
	if update.CategoryID != nil {
		body["category_id"] = *update.CategoryID
	}

	var bot catalogmodels.Bot
	err := c.do(ctx, http.MethodPut, "/admin/bots/username/"+url.PathEscape(username), body, &bot)
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (c *Client) BanUser(ctx context.Context, adminID, userID int64) error {
	body := map[string]interface{}{"user_id": userID, "admin_telegram_id": adminID}
	return c.do(ctx, http.MethodPost, "/admin/ban", body, nil)
}

func (c *Client) UnbanUser(ctx context.Context, adminID, userID int64) error {
	body := map[string]interface{}{"user_id": userID, "admin_telegram_id": adminID}
	return c.do(ctx, http.MethodPost, "/admin/unban", body, nil)
}

func (c *Client) UserInfo(ctx context.Context, adminID, userID int64) (*usermodels.UserInfo, error) {
	endpoint := fmt.Sprintf("/admin/userinfo/%d?admin_id=%d", userID, adminID)
	var info usermodels.UserInfo
	err := c.do(ctx, http.MethodGet, endpoint, nil, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
