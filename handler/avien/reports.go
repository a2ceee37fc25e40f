package avien

import (
	"errors"
	"fmt"

	"avien/db"
	"avien/handler"
	"avien/report"
	"avien/state"
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ReportButton asks the reporter for a reason. report:<commentID>:<submissionID>
func (h *Handlers) ReportButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(2) {
		h.invalid(t, cb)
		return
	}
	commentID, err1 := act.Int64(0)
	submissionID, err2 := act.Int64(1)
	if err1 != nil || err2 != nil {
		h.invalid(t, cb)
		return
	}

	if _, err := db.GetComment(commentID); err != nil {
		t.AnswerCallback(cb.ID, "Comment no longer exists.")
		return
	}

	h.States.Put(cb.From.ID, state.State{
		Kind:         state.KindAwaitingReportReason,
		CommentID:    commentID,
		SubmissionID: submissionID,
	})
	t.AnswerCallback(cb.ID, "")
	kb := reasonsKeyboard()
	t.SendMessage(cb.Message.Chat.ID,
		"🚨 *What is wrong with this comment?* (Your report is anonymous)", &kb)
}

// ReasonButton finalizes the report with the selected reason. reason:<index>
func (h *Handlers) ReasonButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(1) {
		h.invalid(t, cb)
		return
	}
	idx, err := act.Int(0)
	if err != nil {
		h.invalid(t, cb)
		return
	}
	reason, ok := report.ReasonByIndex(idx)
	if !ok {
		h.invalid(t, cb)
		return
	}

	userID := cb.From.ID
	st, found := h.States.Get(userID)
	if !found || st.Kind != state.KindAwaitingReportReason {
		t.AnswerCallback(cb.ID, "This report has expired. Tap 🚩 on the comment again.")
		return
	}
	h.States.Clear(userID)

	_, err = report.File(st.CommentID, userID, reason)
	switch {
	case errors.Is(err, report.ErrDuplicate):
		t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
			"🚫 You have already reported this comment.", nil)
		t.AnswerCallback(cb.ID, "")
		return
	case errors.Is(err, db.ErrNotFound):
		t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
			"Comment no longer exists.", nil)
		t.AnswerCallback(cb.ID, "")
		return
	case err != nil:
		utils.Log.Errorw("file report", "comment_id", st.CommentID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("✅ Report submitted successfully for reason: *%s*.", reason), nil)
	t.AnswerCallback(cb.ID, "")

	h.notifyModerators(t, st.CommentID, st.SubmissionID, reason)
}

// notifyModerators posts the report to the admin group with delete/dismiss
// controls. Best-effort: the report row is already committed.
func (h *Handlers) notifyModerators(t telegram.Transport, commentID, submissionID int64, reason string) {
	content := "[comment unavailable]"
	if c, err := db.GetComment(commentID); err == nil {
		content = c.Content
		submissionID = c.SubmissionID
	}

	text := fmt.Sprintf(
		"🚨 *NEW REPORT* on Comment #%d (Confession #%d).\n\n*Reason:* `%s`\n\n*📝 Reported Comment Content:*\n> %s\n\n*Action:*",
		commentID, submissionID, reason, content,
	)
	kb := reportAdminKeyboard(commentID)
	if _, err := t.SendMessage(h.AdminGroupID, text, &kb); err != nil {
		utils.Log.Errorw("send report notice", "comment_id", commentID, "err", err)
	}
}
