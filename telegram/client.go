package telegram

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// requestTimeout bounds every Bot API call. Long polling needs headroom on
// top of the poll timeout.
const (
	requestTimeout = 50 * time.Second
	pollTimeout    = 30 // seconds, passed to getUpdates
)

// Client implements Transport on top of the Telegram Bot API.
type Client struct {
	api *tgbotapi.BotAPI
}

// NewClient authenticates against the Bot API and returns a client.
func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{
		Timeout: requestTimeout,
	})
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

// Updates returns the long-polling update channel.
func (c *Client) Updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	return c.api.GetUpdatesChan(u)
}

// Stop terminates the long-polling loop.
func (c *Client) Stop() {
	c.api.StopReceivingUpdates()
}

// SendMessage sends a Markdown message and returns the new message id.
func (c *Client) SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	sent, err := c.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// EditMessageText replaces a message's text and, when given, its keyboard.
func (c *Client) EditMessageText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	var edit tgbotapi.EditMessageTextConfig
	if markup != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	edit.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.api.Send(edit)
	return err
}

// EditReplyMarkup replaces only a message's inline keyboard.
func (c *Client) EditReplyMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)
	_, err := c.api.Send(edit)
	return err
}

// AnswerCallback acknowledges a button press.
func (c *Client) AnswerCallback(callbackID, text string) error {
	_, err := c.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

// DeleteMessage removes a message.
func (c *Client) DeleteMessage(chatID int64, messageID int) error {
	_, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

// Username returns the bot's own username.
func (c *Client) Username() string {
	return c.api.Self.UserName
}
