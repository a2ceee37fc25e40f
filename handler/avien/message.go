package avien

import (
	"errors"
	"fmt"

	"avien/db"
	"avien/state"
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// OnText resolves free-form text against the user's conversation state.
// Commands never reach here: the router matches them first, so a recognized
// command always wins over an in-progress flow.
func (h *Handlers) OnText(t telegram.Transport, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		return
	}
	userID := msg.From.ID

	st, ok := h.States.Get(userID)
	if !ok {
		// Ambiguous idle message: show the menu, mutate nothing.
		t.SendMessage(msg.Chat.ID, "Send /start to submit a confession, or open one from the channel to comment.", nil)
		return
	}

	switch st.Kind {
	case state.KindCollectingSubmission:
		h.collectSubmission(t, msg, st)
	case state.KindCollectingComment:
		h.collectComment(t, msg, st, 0)
	case state.KindCollectingReply:
		h.collectComment(t, msg, st, st.ParentID)
	case state.KindEditingProfileField:
		h.collectProfileField(t, msg, st)
	default:
		// A button press is expected in this state.
		t.SendMessage(msg.Chat.ID, "Please use the buttons above, or /cancel to start over.", nil)
	}
}

// collectSubmission turns the text into a pending submission and emits the
// moderator review request.
func (h *Handlers) collectSubmission(t telegram.Transport, msg *tgbotapi.Message, st state.State) {
	userID := msg.From.ID

	banned, err := db.IsUserBanned(userID)
	if err != nil {
		utils.Log.Errorw("ban lookup", "user_id", userID, "err", err)
	}
	if banned {
		h.States.Clear(userID)
		t.SendMessage(msg.Chat.ID, "🚫 You are not allowed to submit confessions.", nil)
		return
	}

	id, err := h.Confessions.Submit(userID, msg.From.FirstName, st.ShareType, msg.Text)
	if err != nil {
		utils.Log.Errorw("create submission", "user_id", userID, "flow", st.Token, "err", err)
		t.SendMessage(msg.Chat.ID, "Something went wrong, please try again.", nil)
		return
	}
	h.States.Clear(userID)

	review := fmt.Sprintf(
		"🛂 *Review Confession #%d*\n👤 Author: %s (ID: %d)\n📝 Content:\n%s\n\nModerators: edit this message to sanitize, then decide.",
		id, msg.From.FirstName, userID, msg.Text,
	)
	kb := reviewKeyboard(id)
	if _, err := t.SendMessage(h.AdminGroupID, review, &kb); err != nil {
		// The submission stays pending; moderators can still find it, but
		// they must be poked another way.
		utils.Log.Errorw("send review request", "submission_id", id, "err", err)
	}

	t.SendMessage(msg.Chat.ID, "✅ Confession sent for review!", nil)
	utils.Log.Infow("submission created", "submission_id", id, "flow", st.Token)
}

// collectComment turns the text into a comment (or reply) on the submission
// the state points at.
func (h *Handlers) collectComment(t telegram.Transport, msg *tgbotapi.Message, st state.State, parentID int64) {
	userID := msg.From.ID
	label := db.CommentLabel(userID, msg.From.FirstName)

	_, err := h.Comments.Add(st.SubmissionID, userID, label, msg.Text, parentID)
	if err != nil {
		h.States.Clear(userID)
		if errors.Is(err, db.ErrNotFound) {
			t.SendMessage(msg.Chat.ID, "Confession not found.", nil)
			return
		}
		utils.Log.Errorw("add comment", "submission_id", st.SubmissionID, "flow", st.Token, "err", err)
		t.SendMessage(msg.Chat.ID, "Something went wrong, please try again.", nil)
		return
	}
	h.States.Clear(userID)

	t.SendMessage(msg.Chat.ID, fmt.Sprintf("✅ Your comment on Confession #%d is live!", st.SubmissionID), nil)
	h.notifyFollowers(t, st.SubmissionID, userID)
}

// notifyFollowers DMs everyone following the confession about new activity.
// Best-effort: a failed DM (blocked bot, closed chat) is logged and skipped.
func (h *Handlers) notifyFollowers(t telegram.Transport, submissionID, actorID int64) {
	for _, followerID := range mustListFollowers(submissionID) {
		if followerID == actorID {
			continue
		}
		text := fmt.Sprintf("💬 New comment on Confession #%d you follow.", submissionID)
		if _, err := t.SendMessage(followerID, text, nil); err != nil {
			utils.Log.Warnw("follower notification", "submission_id", submissionID, "user_id", followerID, "err", err)
		}
	}
}

// collectProfileField updates the profile field the state names.
func (h *Handlers) collectProfileField(t telegram.Transport, msg *tgbotapi.Message, st state.State) {
	userID := msg.From.ID
	h.States.Clear(userID)

	if st.Field != "display_name" {
		t.SendMessage(msg.Chat.ID, "Unknown profile field.", nil)
		return
	}

	if err := db.SetDisplayName(userID, msg.Text); err != nil {
		utils.Log.Errorw("set display name", "user_id", userID, "err", err)
		t.SendMessage(msg.Chat.ID, "Something went wrong, please try again.", nil)
		return
	}
	t.SendMessage(msg.Chat.ID, fmt.Sprintf("✅ Your comments will now show as *%s*.", msg.Text), nil)
}
