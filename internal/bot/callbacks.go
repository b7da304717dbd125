package bot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botlist-backend/internal/common/logger"
)

var searchQueryRe = regexp.MustCompile(`for "(.+?)":`)

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		b.answerCallback(cq.ID, "")
		return
	}

	data := cq.Data
	switch {
	case strings.HasPrefix(data, "category:"):
		b.callbackCategory(ctx, cq, strings.TrimPrefix(data, "category:"))
	case data == "show_categories":
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgCategoriesIntro, categoriesKeyboard())
		b.answerCallback(cq.ID, "")
	case data == "fav_refresh":
		b.callbackFavorites(ctx, cq)
	case data == "fav_add", data == "explore_fav":
		b.replyHTML(cq.Message.Chat.ID, msgFavoritesAddPrompt, markupPtr(cancelKeyboard()))
		b.answerCallback(cq.ID, "")
	case strings.HasPrefix(data, "fav_remove:"):
		b.callbackRemoveFavorite(ctx, cq, strings.TrimPrefix(data, "fav_remove:"))
	case data == "explore_more":
		b.callbackExplore(ctx, cq)
	case data == "search_more":
		b.callbackSearchMore(ctx, cq)
	case data == "cancel_action":
		b.deleteMessage(cq.Message.Chat.ID, cq.Message.MessageID)
		b.answerCallback(cq.ID, msgCancelled)
	case data == "help":
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgHelp, mainKeyboard())
		b.answerCallback(cq.ID, "")
	case data == "contributing":
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgContributing, mainKeyboard())
		b.answerCallback(cq.ID, "")
	case data == "examples":
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgExamples, mainKeyboard())
		b.answerCallback(cq.ID, "")
	case strings.HasPrefix(data, "admin:"):
		b.handleAdminCallback(ctx, cq, strings.TrimPrefix(data, "admin:"))
	default:
		b.answerCallback(cq.ID, "Unknown action")
	}
}

func (b *Bot) callbackCategory(ctx context.Context, cq *tgbotapi.CallbackQuery, rawID string) {
	categoryID, err := strconv.Atoi(rawID)
	if err != nil {
		b.answerCallback(cq.ID, "Unknown action")
		return
	}

	bots, err := b.client.BotsByCategory(ctx, categoryID)
	if err != nil {
		logger.Error().Err(err).Int("category_id", categoryID).Msg("Category fetch failed")
		b.answerCallbackAlert(cq.ID, msgTryLater)
		return
	}

	name := categoryLabel(categoryID)
	if len(bots) == 0 {
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID,
			fmt.Sprintf("🤷 No bots found in <b>%s</b> yet.", name), categoriesKeyboard())
		b.answerCallback(cq.ID, "")
		return
	}

	keyboard := botListKeyboard(bots)
	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to Categories", "show_categories")))

	b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID,
		fmt.Sprintf("📂 <b>%s</b>\n\n%s", name, formatBotLines(truncateBots(bots, 10))),
		keyboard)
	b.answerCallback(cq.ID, "")
}

func (b *Bot) callbackFavorites(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	favorites, err := b.client.Favorites(ctx, cq.From.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Favorites fetch failed")
		b.answerCallbackAlert(cq.ID, msgTryLater)
		return
	}

	if len(favorites) == 0 {
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgFavoritesEmpty, emptyFavoritesKeyboard())
	} else {
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID,
			msgFavoritesIntro+"\n\n"+formatBotLines(favorites), favoritesKeyboard(favorites))
	}
	b.answerCallback(cq.ID, "Refreshed!")
}

func (b *Bot) callbackRemoveFavorite(ctx context.Context, cq *tgbotapi.CallbackQuery, username string) {
	if err := b.client.RemoveFavorite(ctx, cq.From.ID, username); err != nil {
		if IsAPIError(err, "not found") {
			b.answerCallbackAlert(cq.ID, "That bot is no longer in your favorites.")
		} else {
			logger.Error().Err(err).Str("username", username).Msg("Remove favorite failed")
			b.answerCallbackAlert(cq.ID, msgTryLater)
			return
		}
	} else {
		b.answerCallback(cq.ID, msgFavoritesRemoved)
	}

	favorites, err := b.client.Favorites(ctx, cq.From.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Favorites fetch failed")
		return
	}
	if len(favorites) == 0 {
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgFavoritesEmpty, emptyFavoritesKeyboard())
		return
	}
	b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID,
		msgFavoritesIntro+"\n\n"+formatBotLines(favorites), favoritesKeyboard(favorites))
}

func (b *Bot) callbackExplore(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	bots, err := b.client.RandomBots(ctx, 5)
	if err != nil {
		logger.Error().Err(err).Msg("Explore failed")
		b.answerCallbackAlert(cq.ID, msgTryLater)
		return
	}
	if len(bots) == 0 {
		b.answerCallbackAlert(cq.ID, msgExploreEmpty)
		return
	}

	b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID,
		msgExploreIntro+"\n\n"+formatExploreList(bots), exploreKeyboard(bots))
	b.answerCallback(cq.ID, "")
}

// callbackSearchMore re-runs the query embedded in the results message and
// sends the results past the first page.
func (b *Bot) callbackSearchMore(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	match := searchQueryRe.FindStringSubmatch(cq.Message.Text)
	if match == nil {
		b.answerCallbackAlert(cq.ID, "Could not repeat that search. Use /search again.")
		return
	}
	query := match[1]

	bots, err := b.client.Search(ctx, query)
	if err != nil {
		logger.Error().Err(err).Str("query", query).Msg("Search failed")
		b.answerCallbackAlert(cq.ID, msgTryLater)
		return
	}
	if len(bots) <= 10 {
		b.answerCallbackAlert(cq.ID, "No more results.")
		return
	}

	rest := bots[10:]
	if len(rest) > 20 {
		rest = rest[:20]
	}
	b.replyHTML(cq.Message.Chat.ID,
		fmt.Sprintf("%s for \"<b>%s</b>\" (continued):\n\n%s", msgSearchResults, query, formatBotLines(rest)),
		nil)
	b.answerCallback(cq.ID, "")
}

func (b *Bot) handleAdminCallback(ctx context.Context, cq *tgbotapi.CallbackQuery, action string) {
	if !b.isAdmin(ctx, cq.From.ID) {
		b.answerCallbackAlert(cq.ID, msgAdminUnauthorized)
		return
	}

	switch {
	case action == "panel":
		b.editHTML(cq.Message.Chat.ID, cq.Message.MessageID, msgAdminPanel, adminKeyboard())
		b.answerCallback(cq.ID, "")
	case action == "review":
		b.renderPendingSubmissions(ctx, cq.Message.Chat.ID, cq.From.ID, cq.Message.MessageID)
		b.answerCallback(cq.ID, "")
	case action == "userinfo":
		b.replyHTML(cq.Message.Chat.ID, msgAdminUserinfoUsage, nil)
		b.answerCallback(cq.ID, "")
	case action == "ban":
		b.replyHTML(cq.Message.Chat.ID, msgAdminBanUsage, nil)
		b.answerCallback(cq.ID, "")
	case action == "unban":
		b.replyHTML(cq.Message.Chat.ID, msgAdminUnbanUsage, nil)
		b.answerCallback(cq.ID, "")
	case action == "addbot":
		b.replyHTML(cq.Message.Chat.ID, msgAdminAddUsage, nil)
		b.answerCallback(cq.ID, "")
	case action == "updatebot":
		b.replyHTML(cq.Message.Chat.ID, msgAdminUpdateUsage, nil)
		b.answerCallback(cq.ID, "")
	case strings.HasPrefix(action, "approve:"):
		b.callbackModerate(ctx, cq, strings.TrimPrefix(action, "approve:"), true)
	case strings.HasPrefix(action, "reject:"):
		b.callbackModerate(ctx, cq, strings.TrimPrefix(action, "reject:"), false)
	default:
		b.answerCallback(cq.ID, "Unknown action")
	}
}

// callbackModerate settles one submission from the review queue. The payload
// is "<id>:<username>"; the username is display-only.
func (b *Bot) callbackModerate(ctx context.Context, cq *tgbotapi.CallbackQuery, payload string, approve bool) {
	idPart, username, _ := strings.Cut(payload, ":")
	submissionID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		b.answerCallback(cq.ID, "Unknown action")
		return
	}

	if approve {
		bot, err := b.client.ApproveSubmission(ctx, cq.From.ID, submissionID)
		if err != nil {
			b.moderationFailed(ctx, cq, err)
			return
		}
		b.answerCallback(cq.ID, "Approved ✅")
		b.replyHTML(cq.Message.Chat.ID, formatBotResult(msgAdminApproveSuccess, bot), nil)
	} else {
		if err := b.client.RejectSubmission(ctx, cq.From.ID, submissionID); err != nil {
			b.moderationFailed(ctx, cq, err)
			return
		}
		b.answerCallback(cq.ID, "Rejected ❌")
		b.replyHTML(cq.Message.Chat.ID, fmt.Sprintf("%s (@%s)", msgAdminRejectSuccess, username), nil)
	}

	b.renderPendingSubmissions(ctx, cq.Message.Chat.ID, cq.From.ID, cq.Message.MessageID)
}

func (b *Bot) moderationFailed(ctx context.Context, cq *tgbotapi.CallbackQuery, err error) {
	if IsAPIError(err, "processed") || IsAPIError(err, "not found") || IsAPIError(err, "already in the BotList") {
		if apiErr, ok := err.(*APIError); ok {
			b.answerCallbackAlert(cq.ID, apiErr.Message)
		}
		// Someone settled it first; refresh the queue so the stale
		// buttons disappear.
		b.renderPendingSubmissions(ctx, cq.Message.Chat.ID, cq.From.ID, cq.Message.MessageID)
		return
	}
	logger.Error().Err(err).Msg("Moderation failed")
	b.answerCallbackAlert(cq.ID, msgTryLater)
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to delete message")
	}
}
