package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	catalogmodels "botlist-backend/internal/features/catalog/models"
	submissionmodels "botlist-backend/internal/features/submission/models"
)

func botURL(username string) string {
	return "https://t.me/" + username
}

func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.InlineKeyboardButton{Text: "🔍 Search inline", SwitchInlineQueryCurrentChat: strPtr("")},
			tgbotapi.NewInlineKeyboardButtonData("📂 Categories", "show_categories"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Explore", "explore_more"),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Favorites", "fav_refresh"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", "help"),
			tgbotapi.NewInlineKeyboardButtonData("📣 Contributing", "contributing"),
			tgbotapi.NewInlineKeyboardButtonData("📝 Examples", "examples"),
		),
	)
}

func categoriesKeyboard() tgbotapi.InlineKeyboardMarkup {
	categories := catalogmodels.Categories
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(categories)+1)/2)

	for i := 0; i < len(categories); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(categories[i].Name, fmt.Sprintf("category:%d", categories[i].ID)),
		}
		if i+1 < len(categories) {
			row = append(row,
				tgbotapi.NewInlineKeyboardButtonData(categories[i+1].Name, fmt.Sprintf("category:%d", categories[i+1].ID)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func favoritesKeyboard(favorites []*catalogmodels.Bot) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}

	for _, bot := range truncateBots(favorites, 10) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("@"+bot.Username, botURL(bot.Username)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Remove", "fav_remove:"+bot.Username),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Add Bot", "fav_add"),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", "fav_refresh"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func emptyFavoritesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add Bot to Favorites", "fav_add")),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📂 Browse Categories", "show_categories")),
	)
}

func exploreKeyboard(bots []*catalogmodels.Bot) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}

	for _, bot := range bots {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(fmt.Sprintf("@%s - %s", bot.Username, bot.Name), botURL(bot.Username))))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Show More", "explore_more"),
		tgbotapi.NewInlineKeyboardButtonData("⭐️ Add to Favorites", "explore_fav"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func botListKeyboard(bots []*catalogmodels.Bot) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}

	for _, bot := range truncateBots(bots, 10) {
		label := fmt.Sprintf("@%s - %s", bot.Username, bot.Name)
		if bot.AvgRating > 0 {
			label += fmt.Sprintf(" (%.1f⭐)", bot.AvgRating)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(label, botURL(bot.Username))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func searchResultsKeyboard(bots []*catalogmodels.Bot) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}

	for _, bot := range truncateBots(bots, 10) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(fmt.Sprintf("@%s - %s", bot.Username, bot.Name), botURL(bot.Username))))
	}

	if len(bots) > 10 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("📋 %d more results...", len(bots)-10), "search_more")))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel_action")))
}

func adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Review queue", "admin:review"),
			tgbotapi.NewInlineKeyboardButtonData("👤 User info", "admin:userinfo"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚫 Ban user", "admin:ban"),
			tgbotapi.NewInlineKeyboardButtonData("♻️ Unban user", "admin:unban"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add bot", "admin:addbot"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Update bot", "admin:updatebot"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", "admin:panel")),
	)
}

func submissionsKeyboard(submissions []*submissionmodels.Submission) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}

	for _, submission := range submissions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"✅ @"+submission.Username,
				fmt.Sprintf("admin:approve:%d:%s", submission.ID, submission.Username)),
			tgbotapi.NewInlineKeyboardButtonData(
				"❌ Reject",
				fmt.Sprintf("admin:reject:%d:%s", submission.ID, submission.Username)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh", "admin:review"),
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "admin:panel"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func truncateBots(bots []*catalogmodels.Bot, max int) []*catalogmodels.Bot {
	if len(bots) > max {
		return bots[:max]
	}
	return bots
}

func strPtr(s string) *string {
	return &s
}
