package handler

import (
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	commandHandlers  = make(map[string]func(t telegram.Transport, msg *tgbotapi.Message))
	callbackHandlers = make(map[string]func(t telegram.Transport, cb *tgbotapi.CallbackQuery, act Action))
	textHandler      func(t telegram.Transport, msg *tgbotapi.Message)
)

// AddCommandHandler registers a handler for a bot command like /start.
func AddCommandHandler(name string, h func(t telegram.Transport, msg *tgbotapi.Message)) {
	commandHandlers[name] = h
}

// AddCallbackHandler registers a handler for a callback action name.
func AddCallbackHandler(name string, h func(t telegram.Transport, cb *tgbotapi.CallbackQuery, act Action)) {
	callbackHandlers[name] = h
}

// SetTextHandler registers the handler for free-form (non-command) text.
func SetTextHandler(h func(t telegram.Transport, msg *tgbotapi.Message)) {
	textHandler = h
}

// OnUpdate is the main update router. It should be called for every inbound
// update; unknown or malformed callbacks fail closed with a notice and no
// mutation.
func OnUpdate(t telegram.Transport, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		act := ParseAction(cb.Data)
		h, ok := callbackHandlers[act.Name]
		if !ok {
			utils.Log.Warnw("unknown callback action", "data", cb.Data)
			if err := t.AnswerCallback(cb.ID, "Invalid action"); err != nil {
				utils.Log.Errorw("answer callback", "err", err)
			}
			return
		}
		h(t, cb, act)

	case update.Message != nil && update.Message.IsCommand():
		if h, ok := commandHandlers[update.Message.Command()]; ok {
			h(t, update.Message)
		}

	case update.Message != nil && update.Message.Text != "":
		if textHandler != nil {
			textHandler(t, update.Message)
		}
	}
}
