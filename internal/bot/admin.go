package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"botlist-backend/internal/common/logger"
	catalogmodels "botlist-backend/internal/features/catalog/models"
	submissionmodels "botlist-backend/internal/features/submission/models"
)

const pendingReviewLimit = 5

func (b *Bot) cmdAdminPanel(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}
	b.replyHTML(message.Chat.ID, msgAdminPanel, markupPtr(adminKeyboard()))
}

func (b *Bot) cmdReview(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}
	b.sendPendingSubmissions(ctx, message.Chat.ID, fromID(message))
}

// cmdAddBot handles /addbot @username | name | description | category.
func (b *Bot) cmdAddBot(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}

	parts := splitFields(message.CommandArguments())
	if len(parts) < 4 {
		b.replyHTML(message.Chat.ID, msgAdminAddUsage, nil)
		return
	}

	username := strings.TrimLeft(parts[0], "@")
	name, description := parts[1], parts[2]
	if username == "" || name == "" || description == "" {
		b.replyHTML(message.Chat.ID, msgAdminAddUsage, nil)
		return
	}

	categoryID, ok := resolveCategoryID(parts[3])
	if !ok {
		b.reply(message.Chat.ID, msgAdminCategoryBad)
		return
	}

	bot, err := b.client.AdminAddBot(ctx, fromID(message), username, name, description, categoryID)
	if err != nil {
		switch {
		case IsAPIError(err, "already in the BotList"):
			b.reply(message.Chat.ID, msgAdminAddExists)
		case IsAPIError(err, "category"):
			b.reply(message.Chat.ID, msgAdminCategoryBad)
		case IsAPIError(err, "unauthorized"):
			b.reply(message.Chat.ID, msgAdminUnauthorized)
		default:
			logger.Error().Err(err).Msg("Admin add failed")
			b.reply(message.Chat.ID, msgTryLater)
		}
		return
	}

	b.replyHTML(message.Chat.ID, formatBotResult(msgAdminAddSuccess, bot), nil)
}

// cmdUpdateBot handles /updatebot @username | name | description | category
// where "-" keeps a field unchanged.
func (b *Bot) cmdUpdateBot(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}

	parts := strings.Split(message.CommandArguments(), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 || parts[0] == "" {
		b.replyHTML(message.Chat.ID, msgAdminUpdateUsage, nil)
		return
	}

	username := strings.TrimLeft(parts[0], "@")
	var update catalogmodels.BotUpdate

	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		update.Name = &parts[1]
	}
	if len(parts) > 2 && parts[2] != "-" {
		update.Description = &parts[2]
	}
	if len(parts) > 3 && parts[3] != "" && parts[3] != "-" {
		categoryID, ok := resolveCategoryID(parts[3])
		if !ok {
			b.reply(message.Chat.ID, msgAdminCategoryBad)
			return
		}
		update.CategoryID = &categoryID
	}

	if update.Empty() {
		b.reply(message.Chat.ID, msgAdminUpdateNoChange)
		return
	}

	bot, err := b.client.AdminUpdateBot(ctx, fromID(message), username, update)
	if err != nil {
		switch {
		case IsAPIError(err, "not found"):
			b.reply(message.Chat.ID, "❌ Bot not found.")
		case IsAPIError(err, "category"):
			b.reply(message.Chat.ID, msgAdminCategoryBad)
		case IsAPIError(err, "unauthorized"):
			b.reply(message.Chat.ID, msgAdminUnauthorized)
		default:
			logger.Error().Err(err).Msg("Admin update failed")
			b.reply(message.Chat.ID, msgTryLater)
		}
		return
	}

	b.replyHTML(message.Chat.ID, formatBotResult(msgAdminUpdateSuccess, bot), nil)
}

func (b *Bot) cmdBan(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		b.replyHTML(message.Chat.ID, msgAdminBanUsage, nil)
		return
	}

	if err := b.client.BanUser(ctx, fromID(message), userID); err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Ban failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	b.replyHTML(message.Chat.ID, fmt.Sprintf("%s\nUser ID: <code>%d</code>", msgAdminBanSuccess, userID), nil)
}

func (b *Bot) cmdUnban(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		b.replyHTML(message.Chat.ID, msgAdminUnbanUsage, nil)
		return
	}

	if err := b.client.UnbanUser(ctx, fromID(message), userID); err != nil {
		if IsAPIError(err, "not found") {
			b.reply(message.Chat.ID, msgAdminUnbanMissing)
			return
		}
		logger.Error().Err(err).Int64("user_id", userID).Msg("Unban failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}
	b.replyHTML(message.Chat.ID, fmt.Sprintf("%s\nUser ID: <code>%d</code>", msgAdminUnbanSuccess, userID), nil)
}

func (b *Bot) cmdUserInfo(ctx context.Context, message *tgbotapi.Message) {
	if !b.requireAdmin(ctx, message) {
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		b.replyHTML(message.Chat.ID, msgAdminUserinfoUsage, nil)
		return
	}

	info, err := b.client.UserInfo(ctx, fromID(message), userID)
	if err != nil {
		if IsAPIError(err, "not found") {
			b.reply(message.Chat.ID, msgAdminUserinfoNone)
			return
		}
		logger.Error().Err(err).Int64("user_id", userID).Msg("User info failed")
		b.reply(message.Chat.ID, msgTryLater)
		return
	}

	var sb strings.Builder
	sb.WriteString("<b>User Info</b>\n\n")
	fmt.Fprintf(&sb, "<b>Telegram ID:</b> <code>%d</code>\n", info.User.TelegramID)
	fmt.Fprintf(&sb, "<b>Username:</b> %s\n", formatOptionalHandle(info.User.Username))
	fmt.Fprintf(&sb, "<b>First Name:</b> %s\n", formatOptional(info.User.FirstName))
	fmt.Fprintf(&sb, "<b>Status:</b> %s\n", banStatus(info.User.Banned))
	fmt.Fprintf(&sb, "<b>Admin:</b> %s\n", yesNo(info.User.IsAdmin))
	fmt.Fprintf(&sb, "<b>Joined:</b> %s\n\n", info.User.CreatedAt.Format("2006-01-02"))

	fmt.Fprintf(&sb, "<b>Submitted Bots (%d):</b>\n", len(info.SubmittedBots))
	if len(info.SubmittedBots) == 0 {
		sb.WriteString("None")
	}
	for _, bot := range info.SubmittedBots {
		fmt.Fprintf(&sb, "• @%s\n", bot.Username)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "<b>Pending Submissions (%d):</b>\n", len(info.PendingSubmissions))
	if len(info.PendingSubmissions) == 0 {
		sb.WriteString("None")
	}
	for _, submission := range info.PendingSubmissions {
		fmt.Fprintf(&sb, "• @%s\n", submission.Username)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "<b>Spam Reports Made (%d):</b>\n", len(info.SpamReports))
	if len(info.SpamReports) == 0 {
		sb.WriteString("None")
	}
	for _, report := range info.SpamReports {
		fmt.Fprintf(&sb, "• @%s\n", report.BotUsername)
	}

	b.replyHTML(message.Chat.ID, sb.String(), nil)
}

// sendPendingSubmissions renders the moderation queue with per-item
// approve/reject buttons.
func (b *Bot) sendPendingSubmissions(ctx context.Context, chatID, adminID int64) {
	b.renderPendingSubmissions(ctx, chatID, adminID, 0)
}

func (b *Bot) renderPendingSubmissions(ctx context.Context, chatID, adminID int64, editMessageID int) {
	submissions, err := b.client.PendingSubmissions(ctx, adminID, pendingReviewLimit)
	if err != nil {
		logger.Error().Err(err).Msg("Pending submissions fetch failed")
		b.reply(chatID, msgTryLater)
		return
	}

	text := msgAdminReviewEmpty
	keyboard := adminKeyboard()
	if len(submissions) > 0 {
		text = fmt.Sprintf("%s\n\n%s\n\nShowing up to %d pending items.",
			msgAdminReviewIntro, formatSubmissions(submissions), pendingReviewLimit)
		keyboard = submissionsKeyboard(submissions)
	}

	if editMessageID != 0 {
		b.editHTML(chatID, editMessageID, text, keyboard)
		return
	}
	b.replyHTML(chatID, text, markupPtr(keyboard))
}

func (b *Bot) requireAdmin(ctx context.Context, message *tgbotapi.Message) bool {
	userID := fromID(message)
	if userID == 0 {
		b.reply(message.Chat.ID, msgNoUserID)
		return false
	}
	if !b.isAdmin(ctx, userID) {
		b.reply(message.Chat.ID, msgAdminUnauthorized)
		return false
	}
	return true
}

// splitFields splits "a | b | c" input, dropping empty parts.
func splitFields(input string) []string {
	parts := strings.Split(input, "|")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// resolveCategoryID accepts a numeric id or a case-insensitive fragment
// of the category name.
func resolveCategoryID(input string) (int, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, false
	}

	if id, err := strconv.Atoi(trimmed); err == nil {
		if catalogmodels.ValidCategoryID(id) {
			return id, true
		}
		return 0, false
	}

	normalized := strings.ToLower(trimmed)
	for _, category := range catalogmodels.Categories {
		if strings.Contains(strings.ToLower(category.Name), normalized) {
			return category.ID, true
		}
	}
	return 0, false
}

func formatSubmissions(submissions []*submissionmodels.Submission) string {
	lines := make([]string, 0, len(submissions))
	for i, submission := range submissions {
		submitter := "Unknown"
		if submission.SubmitterUsername != nil && *submission.SubmitterUsername != "" {
			submitter = "@" + *submission.SubmitterUsername
		} else if submission.SubmitterTelegramID != nil {
			submitter = fmt.Sprintf("ID %d", *submission.SubmitterTelegramID)
		}

		description := orDefault(submission.Description, "No description provided.")
		lines = append(lines, fmt.Sprintf("%d) <b>%s</b> (@%s)\nCategory: %s\nFrom: %s\n%s",
			i+1, submission.Name, submission.Username,
			categoryLabel(submission.CategoryID), submitter, truncate(description, 180)))
	}
	return strings.Join(lines, "\n\n")
}

func formatBotResult(prefix string, bot *catalogmodels.Bot) string {
	return fmt.Sprintf("%s\n<b>%s</b> (@%s)\nCategory: %s",
		prefix, bot.Name, bot.Username, categoryLabel(bot.CategoryID))
}

func categoryLabel(id int) string {
	if name := catalogmodels.CategoryName(id); name != "" {
		return name
	}
	return "Uncategorized"
}

func formatOptional(value *string) string {
	if value == nil || *value == "" {
		return "Not set"
	}
	return *value
}

func formatOptionalHandle(value *string) string {
	if value == nil || *value == "" {
		return "Not set"
	}
	return "@" + *value
}

func banStatus(banned bool) string {
	if banned {
		return "Banned"
	}
	return "Active"
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
