package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botlist-backend/internal/common/logger"
	catalogmodels "botlist-backend/internal/features/catalog/models"
)

const maxInlineResults = 50

// handleInline answers inline queries: an empty query lists the categories,
// anything else searches the BotList.
func (b *Bot) handleInline(ctx context.Context, query *tgbotapi.InlineQuery) {
	text := strings.TrimSpace(query.Query)
	if text == "" {
		b.answerInline(query.ID, categoryArticles(), 600)
		return
	}

	bots, err := b.client.Search(ctx, text)
	if err != nil {
		logger.Error().Err(err).Str("query", text).Msg("Inline search failed")
		b.answerInline(query.ID, nil, 0)
		return
	}

	results := make([]interface{}, 0, len(bots))
	for i, bot := range bots {
		if i == maxInlineResults {
			break
		}
		results = append(results, botArticle(i, bot))
	}
	b.answerInline(query.ID, results, 300)
}

func (b *Bot) answerInline(queryID string, results []interface{}, cacheTime int) {
	answer := tgbotapi.InlineConfig{
		InlineQueryID: queryID,
		IsPersonal:    true,
		CacheTime:     cacheTime,
		Results:       results,
	}
	if _, err := b.api.Request(answer); err != nil {
		logger.Error().Err(err).Msg("Failed to answer inline query")
	}
}

func categoryArticles() []interface{} {
	results := make([]interface{}, 0, len(catalogmodels.Categories))
	for _, category := range catalogmodels.Categories {
		article := tgbotapi.NewInlineQueryResultArticleHTML(
			fmt.Sprintf("category-%d", category.ID),
			category.Name,
			fmt.Sprintf("📂 <b>%s</b>\n\nTap the button below to browse this category.", category.Name))
		article.Description = "Browse this BotList category"
		article.ReplyMarkup = markupPtr(tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔍 View Bots", fmt.Sprintf("category:%d", category.ID)))))
		results = append(results, article)
	}
	return results
}

func botArticle(index int, bot *catalogmodels.Bot) tgbotapi.InlineQueryResultArticle {
	description := orDefault(bot.Description, "No description available")
	article := tgbotapi.NewInlineQueryResultArticleHTML(
		fmt.Sprintf("bot-%d-%s", index, bot.Username),
		fmt.Sprintf("@%s - %s", bot.Username, bot.Name),
		fmt.Sprintf("🤖 <b>@%s</b> - %s\n\n%s\n\n%s", bot.Username, bot.Name, description, botURL(bot.Username)))
	article.Description = truncate(description, 100)
	article.URL = botURL(bot.Username)
	return article
}
