package avien

import (
	"errors"
	"fmt"
	"strings"

	"avien/confession"
	"avien/db"
	"avien/handler"
	"avien/report"
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	reviewContentMarker = "📝 Content:"
	reviewFooterMarker  = "Moderators:"
)

// extractReviewText pulls the (possibly moderator-edited) submission body
// out of the review message. Moderators sanitize a submission by editing the
// review message in place, so the decision must read the current text, not
// the text captured at submission time. Returns "" when the markers are
// missing; the stored text is used then.
func extractReviewText(messageText string) string {
	_, after, found := strings.Cut(messageText, reviewContentMarker)
	if !found {
		return ""
	}
	body, _, _ := strings.Cut(after, reviewFooterMarker)
	return strings.TrimSpace(body)
}

// AdminAction routes the moderator controls. Subactions:
// admin:approve:<submissionID>, admin:reject:<submissionID>,
// admin:ban:<submissionID>, admin:delc:<commentID>, admin:dismiss:<commentID>
func (h *Handlers) AdminAction(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(2) {
		h.invalid(t, cb)
		return
	}
	// Only buttons living in the admin group count as moderator actions.
	if cb.Message.Chat.ID != h.AdminGroupID {
		t.AnswerCallback(cb.ID, "Not allowed here.")
		return
	}
	id, err := act.Int64(1)
	if err != nil {
		h.invalid(t, cb)
		return
	}

	switch act.String(0) {
	case "approve":
		h.approveSubmission(t, cb, id)
	case "reject":
		h.rejectSubmission(t, cb, id, false)
	case "ban":
		h.rejectSubmission(t, cb, id, true)
	case "delc":
		h.deleteComment(t, cb, id)
	case "dismiss":
		h.dismissReports(t, cb, id)
	default:
		h.invalid(t, cb)
	}
}

func (h *Handlers) approveSubmission(t telegram.Transport, cb *tgbotapi.CallbackQuery, submissionID int64) {
	finalText := extractReviewText(cb.Message.Text)

	sub, err := h.Confessions.Approve(submissionID, finalText)
	switch {
	case errors.Is(err, confession.ErrAlreadyDecided):
		t.AnswerCallback(cb.ID, "Already decided.")
		return
	case errors.Is(err, db.ErrNotFound):
		t.AnswerCallback(cb.ID, "Submission not found.")
		return
	case err != nil:
		// Publish failed; the submission is still pending so the button
		// keeps working for a retry.
		utils.Log.Errorw("approve submission", "submission_id", submissionID, "err", err)
		t.AnswerCallback(cb.ID, "⚠️ Publish failed — submission still pending, try again.")
		return
	}

	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("✅ Confession #%d published.", sub.ID), nil)
	t.AnswerCallback(cb.ID, "")
}

func (h *Handlers) rejectSubmission(t telegram.Transport, cb *tgbotapi.CallbackQuery, submissionID int64, banAuthor bool) {
	finalText := extractReviewText(cb.Message.Text)

	sub, err := h.Confessions.Reject(submissionID, finalText)
	switch {
	case errors.Is(err, confession.ErrAlreadyDecided):
		t.AnswerCallback(cb.ID, "Already decided.")
		return
	case errors.Is(err, db.ErrNotFound):
		t.AnswerCallback(cb.ID, "Submission not found.")
		return
	case err != nil:
		utils.Log.Errorw("reject submission", "submission_id", submissionID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	notice := fmt.Sprintf("❌ Confession #%d rejected.\n\nFinal text: %s", sub.ID, sub.Content)
	if banAuthor {
		if err := db.BanUser(sub.AuthorID, fmt.Sprintf("banned while reviewing confession #%d", sub.ID)); err != nil {
			utils.Log.Errorw("ban author", "user_id", sub.AuthorID, "err", err)
		} else {
			notice = fmt.Sprintf("🔨 Confession #%d rejected and author banned.", sub.ID)
		}
	}

	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, notice, nil)
	t.AnswerCallback(cb.ID, "")
}

func (h *Handlers) deleteComment(t telegram.Transport, cb *tgbotapi.CallbackQuery, commentID int64) {
	_, err := h.Comments.Delete(commentID)
	switch {
	case errors.Is(err, db.ErrNotFound):
		t.AnswerCallback(cb.ID, "Comment already gone.")
		return
	case err != nil:
		utils.Log.Errorw("delete comment", "comment_id", commentID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	// Votes are cascaded and reports resolved inside the delete; the count
	// hook has already resynchronized the channel button.
	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("🗑️ Comment #%d deleted. Channel count updated.", commentID), nil)
	t.AnswerCallback(cb.ID, "")
}

func (h *Handlers) dismissReports(t telegram.Transport, cb *tgbotapi.CallbackQuery, commentID int64) {
	n, err := report.Dismiss(commentID)
	if err != nil {
		utils.Log.Errorw("dismiss reports", "comment_id", commentID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("✅ %d report(s) for Comment #%d dismissed.", n, commentID), nil)
	t.AnswerCallback(cb.ID, "")
}
