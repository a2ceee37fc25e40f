package avien

import (
	"errors"
	"fmt"
	"strings"

	"avien/db"
	"avien/handler"
	"avien/model"
	"avien/state"
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AddCommentButton puts the user into collecting-comment-text for the
// confession. addc:<submissionID>
func (h *Handlers) AddCommentButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(1) {
		h.invalid(t, cb)
		return
	}
	submissionID, err := act.Int64(0)
	if err != nil {
		h.invalid(t, cb)
		return
	}

	if _, err := db.GetSubmission(submissionID); err != nil {
		h.States.Clear(cb.From.ID)
		t.AnswerCallback(cb.ID, "Confession not found.")
		return
	}

	h.States.Put(cb.From.ID, state.State{
		Kind:         state.KindCollectingComment,
		SubmissionID: submissionID,
	})
	t.AnswerCallback(cb.ID, "")
	t.SendMessage(cb.Message.Chat.ID, "📝 Please type your comment now:", nil)
}

// ReplyButton puts the user into collecting-reply-text.
// reply:<submissionID>:<parentCommentID>
func (h *Handlers) ReplyButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(2) {
		h.invalid(t, cb)
		return
	}
	submissionID, err1 := act.Int64(0)
	parentID, err2 := act.Int64(1)
	if err1 != nil || err2 != nil {
		h.invalid(t, cb)
		return
	}

	if _, err := db.GetComment(parentID); err != nil {
		h.States.Clear(cb.From.ID)
		t.AnswerCallback(cb.ID, "Comment no longer exists.")
		return
	}

	h.States.Put(cb.From.ID, state.State{
		Kind:         state.KindCollectingReply,
		SubmissionID: submissionID,
		ParentID:     parentID,
	})
	t.AnswerCallback(cb.ID, "")
	t.SendMessage(cb.Message.Chat.ID, "📝 Please type your reply now:", nil)
}

// BrowseComments renders one page of comments, each as its own message with
// vote/report/reply controls, followed by a pagination footer.
// browse:<submissionID>:<page>
func (h *Handlers) BrowseComments(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(2) {
		h.invalid(t, cb)
		return
	}
	submissionID, err1 := act.Int64(0)
	page, err2 := act.Int(1)
	if err1 != nil || err2 != nil {
		h.invalid(t, cb)
		return
	}

	items, total, page, err := h.Comments.ListPage(submissionID, page)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			t.AnswerCallback(cb.ID, "Confession not found.")
			return
		}
		utils.Log.Errorw("list comments", "submission_id", submissionID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	// Replace the menu with the listing.
	if err := t.DeleteMessage(cb.Message.Chat.ID, cb.Message.MessageID); err != nil {
		utils.Log.Debugw("delete menu message", "err", err)
	}

	if len(items) == 0 {
		t.AnswerCallback(cb.ID, "")
		kb := navKeyboard(submissionID, 1, 1)
		t.SendMessage(cb.Message.Chat.ID, "No comments yet.", &kb)
		return
	}

	for i := range items {
		c := &items[i]
		kb := commentKeyboard(c, submissionID, page)
		if _, err := t.SendMessage(cb.Message.Chat.ID, renderComment(c), &kb); err != nil {
			utils.Log.Errorw("send comment", "comment_id", c.ID, "err", err)
		}
	}

	totalPages := h.Comments.TotalPages(total)
	footer := fmt.Sprintf("Displaying page %d/%d. Total %d comments.", page, totalPages, total)
	kb := navKeyboard(submissionID, page, totalPages)
	t.SendMessage(cb.Message.Chat.ID, footer, &kb)
	t.AnswerCallback(cb.ID, "")
}

// renderComment formats a comment with its replies nested underneath.
// Replies are display-only here; they never consume page slots.
func renderComment(c *model.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💬 %s\n👤 *%s*", c.Content, c.AuthorName)
	for i := range c.Replies {
		r := &c.Replies[i]
		fmt.Fprintf(&b, "\n  ↪️ *%s*: %s", r.AuthorName, r.Content)
	}
	return b.String()
}

// FollowButton toggles following a confession. follow:<submissionID>
func (h *Handlers) FollowButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(1) {
		h.invalid(t, cb)
		return
	}
	submissionID, err := act.Int64(0)
	if err != nil {
		h.invalid(t, cb)
		return
	}

	if _, err := db.GetSubmission(submissionID); err != nil {
		t.AnswerCallback(cb.ID, "Confession not found.")
		return
	}

	following, err := db.ToggleFollow(submissionID, cb.From.ID)
	if err != nil {
		utils.Log.Errorw("toggle follow", "submission_id", submissionID, "err", err)
		t.AnswerCallback(cb.ID, "Something went wrong, try again.")
		return
	}

	if following {
		t.AnswerCallback(cb.ID, "🔔 Following this confession.")
	} else {
		t.AnswerCallback(cb.ID, "🔕 Unfollowed.")
	}
}
