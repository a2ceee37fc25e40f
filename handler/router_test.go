package handler

import (
	"testing"

	"avien/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	answers []string
}

func (r *recordingTransport) SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	return 1, nil
}

func (r *recordingTransport) EditMessageText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (r *recordingTransport) EditReplyMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (r *recordingTransport) AnswerCallback(callbackID, text string) error {
	r.answers = append(r.answers, text)
	return nil
}

func (r *recordingTransport) DeleteMessage(chatID int64, messageID int) error { return nil }
func (r *recordingTransport) Username() string                                { return "avien_bot" }

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb-1", Data: data},
	}
}

func TestUnknownCallbackFailsClosed(t *testing.T) {
	rt := &recordingTransport{}

	OnUpdate(rt, callbackUpdate("no_such_action:1:2"))

	require.Equal(t, []string{"Invalid action"}, rt.answers)
}

func TestRegisteredCallbackIsDispatched(t *testing.T) {
	rt := &recordingTransport{}

	var got Action
	AddCallbackHandler("router_test_echo", func(tr telegram.Transport, cb *tgbotapi.CallbackQuery, act Action) {
		got = act
		tr.AnswerCallback(cb.ID, "ok")
	})

	OnUpdate(rt, callbackUpdate("router_test_echo:7:up"))

	require.Equal(t, "router_test_echo", got.Name)
	require.Equal(t, []string{"7", "up"}, got.Args)
	require.Equal(t, []string{"ok"}, rt.answers)
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	rt := &recordingTransport{}

	msg := &tgbotapi.Message{
		Text:     "/nosuchcommand",
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 14}},
	}
	require.NotPanics(t, func() {
		OnUpdate(rt, tgbotapi.Update{Message: msg})
	})
	require.Empty(t, rt.answers)
}
