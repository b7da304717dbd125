package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botlist-backend/internal/common/config"
	"botlist-backend/internal/common/logger"
)

const handlerTimeout = 30 * time.Second

// Bot is the Telegram front-end of the BotList. Every handler goes
// through the REST API rather than the database, so the bot stays a thin
// chat adapter.
type Bot struct {
	api    *tgbotapi.BotAPI
	client *Client
	cfg    *config.Config
}

func New(cfg *config.Config, client *Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = cfg.Telegram.Debug

	return &Bot{api: api, client: client, cfg: cfg}, nil
}

// Run consumes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	logger.Info().Str("username", b.api.Self.UserName).Msg("Bot authorized")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(update)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.InlineQuery != nil:
		b.handleInline(ctx, update.InlineQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}
	b.handlePlainText(ctx, message)
}

// handlePlainText looks up forwarded or typed bot handles.
func (b *Bot) handlePlainText(ctx context.Context, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "@") || strings.ContainsAny(text, " \n") {
		return
	}

	username := strings.TrimLeft(text, "@")
	bot, err := b.client.BotByUsername(ctx, username)
	if err != nil {
		if IsAPIError(err, "not found") {
			b.reply(message.Chat.ID, fmt.Sprintf("🤷 @%s is not in the BotList yet. Submit it with /new!", username))
			return
		}
		logger.Error().Err(err).Str("username", username).Msg("Bot lookup failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}

	b.replyHTML(message.Chat.ID,
		fmt.Sprintf("🤖 <b>@%s</b> - %s\n\n%s", bot.Username, bot.Name, orDefault(bot.Description, "No description available")),
		nil)
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (b *Bot) replyHTML(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	if _, err := b.api.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (b *Bot) editHTML(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		// "message is not modified" is routine on refresh taps.
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to edit message")
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		logger.Error().Err(err).Msg("Failed to answer callback")
	}
}

func (b *Bot) answerCallbackAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		logger.Error().Err(err).Msg("Failed to answer callback")
	}
}

// isAdmin checks the configured allow-list before asking the API.
func (b *Bot) isAdmin(ctx context.Context, telegramID int64) bool {
	if b.cfg.IsConfiguredAdmin(telegramID) {
		return true
	}
	isAdmin, err := b.client.IsAdmin(ctx, telegramID)
	if err != nil {
		logger.Error().Err(err).Int64("telegram_id", telegramID).Msg("Admin check failed")
		return false
	}
	return isAdmin
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
