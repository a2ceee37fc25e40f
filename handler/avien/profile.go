package avien

import (
	"fmt"

	"avien/db"
	"avien/handler"
	"avien/state"
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ProfileCommand shows the user's profile with an edit control.
func (h *Handlers) ProfileCommand(t telegram.Transport, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		return
	}

	label := db.CommentLabel(msg.From.ID, msg.From.FirstName)
	text := fmt.Sprintf("👤 *Your profile*\n\nComments show as: *%s*", label)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Change display name",
				handler.FormatAction("profile", "editname")),
		),
	)
	if _, err := t.SendMessage(msg.Chat.ID, text, &kb); err != nil {
		utils.Log.Errorw("send profile", "user_id", msg.From.ID, "err", err)
	}
}

// ProfileButton starts editing a profile field. profile:editname
func (h *Handlers) ProfileButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(1) || act.String(0) != "editname" {
		h.invalid(t, cb)
		return
	}

	h.States.Put(cb.From.ID, state.State{
		Kind:  state.KindEditingProfileField,
		Field: "display_name",
	})
	t.AnswerCallback(cb.ID, "")
	t.SendMessage(cb.Message.Chat.ID, "📝 Send your new display name:", nil)
}
