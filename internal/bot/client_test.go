package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Already subscribed"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Subscribe(context.Background(), -1001, 100)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Already subscribed", apiErr.Message)

	assert.True(t, IsAPIError(err, "already subscribed"))
	assert.True(t, IsAPIError(err, "Already"))
	assert.False(t, IsAPIError(err, "banned"))
}

func TestClientFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Unsubscribe(context.Background(), -1001)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClientBotByUsername(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bots/username/coolbot", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 1, "username": "coolbot", "name": "Cool Bot", "category_id": 6,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	bot, err := client.BotByUsername(context.Background(), "coolbot")
	require.NoError(t, err)
	assert.Equal(t, "coolbot", bot.Username)
	assert.Equal(t, "Cool Bot", bot.Name)
}

func TestClientSearchSwitchesOnHandlePrefix(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Search(ctx, "@coolbot")
	require.NoError(t, err)
	assert.Equal(t, []string{"coolbot"}, gotQuery["username"])
	assert.Empty(t, gotQuery["name"])

	_, err = client.Search(ctx, "music")
	require.NoError(t, err)
	assert.Equal(t, []string{"music"}, gotQuery["name"])
	assert.Equal(t, []string{"music"}, gotQuery["description"])
}

func TestClientSubmitBot(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submissions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true, "message": "Bot submitted for review"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitBot(context.Background(), 100, "coolbot", "Cool Bot", "Cools drinks", 6)
	require.NoError(t, err)

	assert.Equal(t, "coolbot", body["username"])
	assert.Equal(t, float64(100), body["telegram_id"])
	assert.Equal(t, float64(6), body["category_id"])
}
