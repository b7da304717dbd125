package bot

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botlist-backend/internal/common/logger"
	catalogmodels "botlist-backend/internal/features/catalog/models"
)

var (
	handleRe     = regexp.MustCompile(`@?(\w+)`)
	submissionRe = regexp.MustCompile(`@(\w+)`)
)

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.replyHTML(message.Chat.ID, msgWelcome, markupPtr(mainKeyboard()))
	case "help":
		b.replyHTML(message.Chat.ID, msgHelp, markupPtr(mainKeyboard()))
	case "contribute", "contributing":
		b.replyHTML(message.Chat.ID, msgContributing, nil)
	case "examples":
		b.replyHTML(message.Chat.ID, msgExamples, nil)
	case "rules":
		b.replyHTML(message.Chat.ID, msgRules, nil)
	case "category", "categories":
		b.replyHTML(message.Chat.ID, msgCategoriesIntro, markupPtr(categoriesKeyboard()))
	case "explore":
		b.cmdExplore(ctx, message)
	case "favorites":
		b.cmdFavorites(ctx, message)
	case "favorite":
		b.cmdFavorite(ctx, message)
	case "unfavorite":
		b.cmdUnfavorite(ctx, message)
	case "search":
		b.cmdSearch(ctx, message)
	case "new":
		b.cmdNew(ctx, message)
	case "spam":
		b.cmdSpam(ctx, message)
	case "offline":
		b.cmdOffline(ctx, message)
	case "newbots":
		b.cmdNewBots(ctx, message)
	case "bestbots":
		b.cmdBestBots(ctx, message)
	case "mybots":
		b.cmdMyBots(ctx, message)
	case "subscribe":
		b.cmdSubscribe(ctx, message)
	case "unsubscribe":
		b.cmdUnsubscribe(ctx, message)
	case "admin":
		b.cmdAdminPanel(ctx, message)
	case "review":
		b.cmdReview(ctx, message)
	case "addbot":
		b.cmdAddBot(ctx, message)
	case "updatebot":
		b.cmdUpdateBot(ctx, message)
	case "ban":
		b.cmdBan(ctx, message)
	case "unban":
		b.cmdUnban(ctx, message)
	case "userinfo":
		b.cmdUserInfo(ctx, message)
	}
}

func (b *Bot) cmdExplore(ctx context.Context, message *tgbotapi.Message) {
	bots, err := b.client.RandomBots(ctx, 5)
	if err != nil {
		logger.Error().Err(err).Msg("Explore failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	if len(bots) == 0 {
		b.reply(message.Chat.ID, msgExploreEmpty)
		return
	}

	b.replyHTML(message.Chat.ID,
		msgExploreIntro+"\n\n"+formatExploreList(bots),
		markupPtr(exploreKeyboard(bots)))
}

func (b *Bot) cmdFavorites(ctx context.Context, message *tgbotapi.Message) {
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	favorites, err := b.client.Favorites(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msg("Favorites fetch failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}

	if len(favorites) == 0 {
		b.replyHTML(message.Chat.ID, msgFavoritesEmpty, markupPtr(emptyFavoritesKeyboard()))
		return
	}
	b.replyHTML(message.Chat.ID,
		msgFavoritesIntro+"\n\n"+formatBotLines(favorites),
		markupPtr(favoritesKeyboard(favorites)))
}

func (b *Bot) cmdFavorite(ctx context.Context, message *tgbotapi.Message) {
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	username, ok := parseHandle(message.CommandArguments())
	if !ok {
		b.reply(message.Chat.ID, msgFavoritesAddPrompt)
		return
	}

	if err := b.client.AddFavorite(ctx, userID, username); err != nil {
		switch {
		case IsAPIError(err, "not found"):
			b.reply(message.Chat.ID, "That bot is not in the BotList.")
		case IsAPIError(err, "already in favorites"):
			b.reply(message.Chat.ID, "That bot is already in your favorites.")
		default:
			logger.Error().Err(err).Msg("Add favorite failed")
			b.reply(message.Chat.ID, msgTryLater)
		}
		return
	}
	b.reply(message.Chat.ID, fmt.Sprintf("⭐ @%s added to your favorites.", username))
}

func (b *Bot) cmdUnfavorite(ctx context.Context, message *tgbotapi.Message) {
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	username, ok := parseHandle(message.CommandArguments())
	if !ok {
		b.reply(message.Chat.ID, "Remove a favorite like this:\n/unfavorite @username")
		return
	}

	if err := b.client.RemoveFavorite(ctx, userID, username); err != nil {
		if IsAPIError(err, "not found") {
			b.reply(message.Chat.ID, "That bot is not in your favorites.")
			return
		}
		logger.Error().Err(err).Msg("Remove favorite failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	b.reply(message.Chat.ID, fmt.Sprintf("❌ @%s removed from your favorites.", username))
}

func (b *Bot) cmdSearch(ctx context.Context, message *tgbotapi.Message) {
	query := strings.TrimSpace(message.CommandArguments())
	if query == "" {
		b.replyHTML(message.Chat.ID, msgSearchPrompt, markupPtr(cancelKeyboard()))
		return
	}
	if len([]rune(query)) < 3 {
		b.reply(message.Chat.ID, msgSearchTooShort)
		return
	}

	bots, err := b.client.Search(ctx, query)
	if err != nil {
		logger.Error().Err(err).Str("query", query).Msg("Search failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	if len(bots) == 0 {
		b.reply(message.Chat.ID, msgSearchEmpty)
		return
	}

	text := fmt.Sprintf("%s for \"<b>%s</b>\":\n\n%s", msgSearchResults, query, formatBotLines(truncateBots(bots, 10)))
	if len(bots) > 10 {
		text += fmt.Sprintf("\n\n<i>...and %d more results</i>", len(bots)-10)
	}
	b.replyHTML(message.Chat.ID, text, markupPtr(searchResultsKeyboard(bots)))
}

func (b *Bot) cmdNew(ctx context.Context, message *tgbotapi.Message) {
	input := strings.TrimSpace(message.CommandArguments())
	if input == "" {
		b.replyHTML(message.Chat.ID, msgNewBotPrompt, nil)
		return
	}

	username, description, ok := parseSubmission(input)
	if !ok {
		b.replyHTML(message.Chat.ID, msgNewBotInvalid, nil)
		return
	}

	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	err := b.client.SubmitBot(ctx, userID, username, username, description, catalogmodels.DefaultCategoryID)
	if err != nil {
		switch {
		case IsAPIError(err, "already in the BotList"):
			b.reply(message.Chat.ID, msgNewBotExists)
		case IsAPIError(err, "pending review"):
			b.reply(message.Chat.ID, msgNewBotPending)
		case IsAPIError(err, "banned"):
			b.reply(message.Chat.ID, msgNewBotBanned)
		default:
			logger.Error().Err(err).Msg("Submission failed")
			b.reply(message.Chat.ID, msgTryLater)
		}
		return
	}
	b.reply(message.Chat.ID, msgNewBotSuccess)
}

func (b *Bot) cmdSpam(ctx context.Context, message *tgbotapi.Message) {
	username, ok := parseHandle(message.CommandArguments())
	if !ok {
		b.replyHTML(message.Chat.ID, msgSpamPrompt, nil)
		return
	}
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	if err := b.client.ReportSpam(ctx, userID, username); err != nil {
		switch {
		case IsAPIError(err, "not found"):
			b.reply(message.Chat.ID, msgSpamNotFound)
		case IsAPIError(err, "already reported"):
			b.reply(message.Chat.ID, msgSpamAlready)
		case IsAPIError(err, "banned"):
			b.reply(message.Chat.ID, msgSpamBanned)
		default:
			logger.Error().Err(err).Msg("Spam report failed")
			b.reply(message.Chat.ID, msgTryLater)
		}
		return
	}
	b.reply(message.Chat.ID, msgSpamSuccess)
}

func (b *Bot) cmdOffline(ctx context.Context, message *tgbotapi.Message) {
	username, ok := parseHandle(message.CommandArguments())
	if !ok {
		b.replyHTML(message.Chat.ID, msgOfflinePrompt, nil)
		return
	}
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	if err := b.client.ReportOffline(ctx, userID, username); err != nil {
		switch {
		case IsAPIError(err, "not found"):
			b.reply(message.Chat.ID, msgOfflineNotFound)
		case IsAPIError(err, "already been reported"):
			b.reply(message.Chat.ID, msgOfflineAlready)
		case IsAPIError(err, "banned"):
			b.reply(message.Chat.ID, msgOfflineBanned)
		default:
			logger.Error().Err(err).Msg("Offline report failed")
			b.reply(message.Chat.ID, msgTryLater)
		}
		return
	}
	b.reply(message.Chat.ID, msgOfflineSuccess)
}

func (b *Bot) cmdNewBots(ctx context.Context, message *tgbotapi.Message) {
	bots, err := b.client.NewBots(ctx, 10)
	if err != nil {
		logger.Error().Err(err).Msg("New bots fetch failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	if len(bots) == 0 {
		b.reply(message.Chat.ID, msgNewBotsEmpty)
		return
	}
	b.replyHTML(message.Chat.ID,
		msgNewBotsIntro+"\n\n"+formatNumberedList(bots),
		markupPtr(botListKeyboard(bots)))
}

func (b *Bot) cmdBestBots(ctx context.Context, message *tgbotapi.Message) {
	bots, err := b.client.BestBots(ctx, 10)
	if err != nil {
		logger.Error().Err(err).Msg("Best bots fetch failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	if len(bots) == 0 {
		b.reply(message.Chat.ID, msgBestBotsEmpty)
		return
	}
	b.replyHTML(message.Chat.ID,
		msgBestBotsIntro+"\n\n"+formatNumberedList(bots),
		markupPtr(botListKeyboard(bots)))
}

func (b *Bot) cmdMyBots(ctx context.Context, message *tgbotapi.Message) {
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	submissions, err := b.client.UserSubmissions(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msg("User submissions fetch failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}

	if len(submissions.Approved) == 0 && len(submissions.Pending) == 0 {
		b.replyHTML(message.Chat.ID, msgMyBotsEmpty, nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(msgMyBotsIntro + "\n\n")
	if len(submissions.Approved) > 0 {
		sb.WriteString("<b>Approved Bots:</b>\n")
		for _, bot := range submissions.Approved {
			fmt.Fprintf(&sb, "• @%s - %s\n", bot.Username, bot.Name)
		}
		sb.WriteString("\n")
	}
	if len(submissions.Pending) > 0 {
		sb.WriteString("<b>Pending Review:</b>\n")
		for _, submission := range submissions.Pending {
			fmt.Fprintf(&sb, "• @%s - %s (pending)\n", submission.Username, submission.Name)
		}
	}
	b.replyHTML(message.Chat.ID, sb.String(), nil)
}

func (b *Bot) cmdSubscribe(ctx context.Context, message *tgbotapi.Message) {
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return
	}

	if err := b.client.Subscribe(ctx, message.Chat.ID, userID); err != nil {
		if IsAPIError(err, "already subscribed") {
			b.reply(message.Chat.ID, msgSubscribeAlready)
			return
		}
		logger.Error().Err(err).Msg("Subscribe failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	b.reply(message.Chat.ID, msgSubscribeSuccess)
}

func (b *Bot) cmdUnsubscribe(ctx context.Context, message *tgbotapi.Message) {
	if err := b.client.Unsubscribe(ctx, message.Chat.ID); err != nil {
		if IsAPIError(err, "no active subscription") {
			b.reply(message.Chat.ID, msgUnsubscribeMissing)
			return
		}
		logger.Error().Err(err).Msg("Unsubscribe failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	b.reply(message.Chat.ID, msgUnsubscribeSuccess)
}

func fromID(message *tgbotapi.Message) int64 {
	if message.From == nil {
		return 0
	}
	return message.From.ID
}

// parseHandle extracts a bot username from command arguments like
// "@coolbot" or "coolbot trailing words".
func parseHandle(args string) (string, bool) {
	match := handleRe.FindStringSubmatch(strings.TrimSpace(args))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// parseSubmission splits "@username - description" input.
func parseSubmission(input string) (username, description string, ok bool) {
	match := submissionRe.FindStringSubmatch(input)
	if match == nil {
		return "", "", false
	}
	username = match[1]

	rest := strings.Replace(input, match[0], "", 1)
	rest = strings.TrimSpace(rest)
	rest = strings.TrimLeft(rest, "-–")
	description = strings.TrimSpace(rest)
	return username, description, true
}

func formatBotLines(bots []*catalogmodels.Bot) string {
	lines := make([]string, 0, len(bots))
	for _, bot := range bots {
		lines = append(lines, fmt.Sprintf("• <b>@%s</b> - %s", bot.Username, bot.Name))
	}
	return strings.Join(lines, "\n")
}

func formatNumberedList(bots []*catalogmodels.Bot) string {
	lines := make([]string, 0, len(bots))
	for i, bot := range bots {
		line := fmt.Sprintf("%d. <b>@%s</b> - %s", i+1, bot.Username, bot.Name)
		if bot.AvgRating > 0 {
			line += fmt.Sprintf(" (%.1f stars)", bot.AvgRating)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatExploreList(bots []*catalogmodels.Bot) string {
	lines := make([]string, 0, len(bots))
	for _, bot := range bots {
		description := orDefault(bot.Description, "No description")
		lines = append(lines, fmt.Sprintf("• <b>@%s</b> - %s\n  %s", bot.Username, bot.Name, truncate(description, 100)))
	}
	return strings.Join(lines, "\n\n")
}

func markupPtr(markup tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &markup
}
