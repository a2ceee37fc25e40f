package avien

import (
	"errors"
	"fmt"

	"avien/db"
	"avien/handler"
	"avien/telegram"
	"avien/utils"
	"avien/vote"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// VoteButton casts a vote and refreshes the comment's keyboard with the
// freshly recomputed counts. vote:<commentID>:<up|dw>:<submissionID>:<page>
func (h *Handlers) VoteButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(4) {
		h.invalid(t, cb)
		return
	}
	commentID, err1 := act.Int64(0)
	direction, okDir := vote.ParseDirection(act.String(1))
	submissionID, err2 := act.Int64(2)
	page, err3 := act.Int(3)
	if err1 != nil || !okDir || err2 != nil || err3 != nil {
		h.invalid(t, cb)
		return
	}

	likes, dislikes, err := vote.Cast(cb.From.ID, commentID, direction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			t.AnswerCallback(cb.ID, "Comment no longer exists.")
			return
		}
		utils.Log.Errorw("cast vote", "comment_id", commentID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("👍 %d", likes),
				handler.FormatAction("vote", commentID, "up", submissionID, page),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("👎 %d", dislikes),
				handler.FormatAction("vote", commentID, "dw", submissionID, page),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"🚩",
				handler.FormatAction("report", commentID, submissionID),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"↩️ Reply",
				handler.FormatAction("reply", submissionID, commentID),
			),
		),
	)
	if err := t.EditReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID, kb); err != nil {
		utils.Log.Debugw("refresh vote keyboard", "comment_id", commentID, "err", err)
	}
	t.AnswerCallback(cb.ID, "Vote recorded!")
}
