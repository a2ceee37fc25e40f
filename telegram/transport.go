// Package telegram wraps the Telegram Bot API behind the narrow capability
// surface the rest of the system consumes, so core components can be tested
// against a fake transport.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Transport is the messaging capability surface. Every call can fail
// transiently; callers decide whether a failure is swallowed (best-effort
// notifications) or surfaced (pipeline-critical sends).
type Transport interface {
	// SendMessage sends a message and returns the new message id.
	SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error)
	// EditMessageText replaces a message's text (and markup, when given).
	EditMessageText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error
	// EditReplyMarkup replaces only a message's inline keyboard.
	EditReplyMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) error
	// AnswerCallback acknowledges a button press with an optional toast.
	AnswerCallback(callbackID, text string) error
	// DeleteMessage removes a message.
	DeleteMessage(chatID int64, messageID int) error
	// Username returns the bot's own username, used for deep links.
	Username() string
}
