package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// deepLinkPrefix marks a /start payload that routes into a confession's
// comment hub. The payload must round-trip an integer id losslessly.
const deepLinkPrefix = "conf_"

// DeepLink builds the public URL that re-enters the bot at a confession.
func DeepLink(username string, submissionID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%s%d", username, deepLinkPrefix, submissionID)
}

// ParseDeepLink extracts the submission id from a /start payload.
func ParseDeepLink(payload string) (int64, bool) {
	if !strings.HasPrefix(payload, deepLinkPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(payload, deepLinkPrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ChannelMarkup builds the single-button keyboard attached to a public post,
// deep-linking into the comment hub and showing the live comment count.
func ChannelMarkup(username string, submissionID int64, count int) tgbotapi.InlineKeyboardMarkup {
	btn := tgbotapi.NewInlineKeyboardButtonURL(
		fmt.Sprintf("💬 View/Add Comments (%d)", count),
		DeepLink(username, submissionID),
	)
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btn))
}
