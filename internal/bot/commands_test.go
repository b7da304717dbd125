package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodels "botlist-backend/internal/features/catalog/models"
)

func TestParseHandle(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"@coolbot", "coolbot", true},
		{"coolbot", "coolbot", true},
		{"  @coolbot trailing words", "coolbot", true},
		{"", "", false},
		{"  - ", "", false},
	}

	for _, tc := range cases {
		got, ok := parseHandle(tc.input)
		assert.Equal(t, tc.ok, ok, "input: %q", tc.input)
		assert.Equal(t, tc.want, got, "input: %q", tc.input)
	}
}

func TestParseSubmission(t *testing.T) {
	username, description, ok := parseSubmission("@coolbot - Cools your drinks")
	require.True(t, ok)
	assert.Equal(t, "coolbot", username)
	assert.Equal(t, "Cools your drinks", description)

	username, description, ok = parseSubmission("@coolbot")
	require.True(t, ok)
	assert.Equal(t, "coolbot", username)
	assert.Empty(t, description)

	// The en dash people paste from chat messages works too.
	_, description, ok = parseSubmission("@coolbot – chills beverages")
	require.True(t, ok)
	assert.Equal(t, "chills beverages", description)

	_, _, ok = parseSubmission("no handle here")
	assert.False(t, ok)
}

func TestResolveCategoryID(t *testing.T) {
	id, ok := resolveCategoryID("13")
	require.True(t, ok)
	assert.Equal(t, 13, id)

	id, ok = resolveCategoryID("music")
	require.True(t, ok)
	assert.Equal(t, 13, id)

	_, ok = resolveCategoryID("99")
	assert.False(t, ok)

	_, ok = resolveCategoryID("no such category")
	assert.False(t, ok)

	_, ok = resolveCategoryID("")
	assert.False(t, ok)
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t,
		[]string{"@coolbot", "Cool Bot", "Cools drinks", "music"},
		splitFields(" @coolbot | Cool Bot |Cools drinks| music "))

	assert.Empty(t, splitFields("  |  | "))
}

func TestTruncateIsRuneSafe(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, "🤖🤖...", truncate("🤖🤖🤖🤖", 2))
}

func TestTruncateBots(t *testing.T) {
	bots := []*catalogmodels.Bot{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, truncateBots(bots, 2), 2)
	assert.Len(t, truncateBots(bots, 5), 3)
}

func TestFormatNumberedListShowsRatings(t *testing.T) {
	bots := []*catalogmodels.Bot{
		{Username: "rated", Name: "Rated", AvgRating: 4.5},
		{Username: "unrated", Name: "Unrated"},
	}

	got := formatNumberedList(bots)
	assert.Contains(t, got, "1. <b>@rated</b> - Rated (4.5 stars)")
	assert.Contains(t, got, "2. <b>@unrated</b> - Unrated")
	assert.NotContains(t, got, "Unrated (")
}

func TestSearchQueryRecovery(t *testing.T) {
	match := searchQueryRe.FindStringSubmatch(`🔍 Search results for "music players":`)
	require.NotNil(t, match)
	assert.Equal(t, "music players", match[1])

	assert.Nil(t, searchQueryRe.FindStringSubmatch("unrelated message"))
}
