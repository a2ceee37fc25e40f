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

// StartCommand handles /start. With a conf_<id> deep-link payload it opens
// that confession's comment hub; without one it begins the submission flow.
func (h *Handlers) StartCommand(t telegram.Transport, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		return
	}
	userID := msg.From.ID

	if id, ok := telegram.ParseDeepLink(msg.CommandArguments()); ok {
		h.States.Clear(userID)
		h.openCommentHub(t, msg.Chat.ID, userID, id)
		return
	}

	// Returning users who already accepted the terms go straight to the
	// share-type selection.
	consented, err := db.HasConsent(userID)
	if err != nil {
		utils.Log.Errorw("consent lookup", "user_id", userID, "err", err)
	}
	if consented {
		h.States.Put(userID, state.State{Kind: state.KindAwaitingShareType})
		kb := shareTypeKeyboard()
		if _, err := t.SendMessage(msg.Chat.ID, "What are you sharing?", &kb); err != nil {
			utils.Log.Errorw("send share-type prompt", "user_id", userID, "err", err)
		}
		return
	}

	h.States.Put(userID, state.State{Kind: state.KindAwaitingTerms})
	kb := termsKeyboard()
	if _, err := t.SendMessage(msg.Chat.ID, termsText, &kb); err != nil {
		utils.Log.Errorw("send terms", "user_id", userID, "err", err)
	}
}

// openCommentHub shows the confession with its comment menu.
func (h *Handlers) openCommentHub(t telegram.Transport, chatID, userID, submissionID int64) {
	sub, err := db.GetSubmission(submissionID)
	if err != nil {
		t.SendMessage(chatID, "Confession not found.", nil)
		return
	}

	count, err := h.Comments.Count(submissionID)
	if err != nil {
		utils.Log.Errorw("count comments", "submission_id", submissionID, "err", err)
	}

	following := false
	for _, id := range mustListFollowers(submissionID) {
		if id == userID {
			following = true
			break
		}
	}

	text := fmt.Sprintf(
		"*Confession #%d*\n\n_%s_\n\nYou can always 🚩 report inappropriate comments.\n\nSelect an option below:",
		sub.ID, sub.Content,
	)
	kb := hubKeyboard(submissionID, count, following)
	if _, err := t.SendMessage(chatID, text, &kb); err != nil {
		utils.Log.Errorw("send comment hub", "submission_id", submissionID, "err", err)
	}
}

func mustListFollowers(submissionID int64) []int64 {
	ids, err := db.ListFollowers(submissionID)
	if err != nil {
		utils.Log.Errorw("list followers", "submission_id", submissionID, "err", err)
		return nil
	}
	return ids
}

// CancelCommand clears any in-progress flow without mutating the store.
func (h *Handlers) CancelCommand(t telegram.Transport, msg *tgbotapi.Message) {
	h.States.Clear(msg.From.ID)
	t.SendMessage(msg.Chat.ID, "Cancelled.", nil)
}

// TermsDecision handles the accept/decline buttons on the terms prompt.
func (h *Handlers) TermsDecision(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(1) {
		h.invalid(t, cb)
		return
	}
	userID := cb.From.ID

	switch act.String(0) {
	case "decline":
		h.States.Clear(userID)
		t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, "❌ You declined.", nil)
		t.AnswerCallback(cb.ID, "")

	case "accept":
		if err := db.RecordConsent(userID, cb.From.FirstName); err != nil {
			utils.Log.Errorw("record consent", "user_id", userID, "err", err)
			t.AnswerCallback(cb.ID, "Something went wrong, try again.")
			return
		}
		h.States.Put(userID, state.State{Kind: state.KindAwaitingShareType})
		kb := shareTypeKeyboard()
		t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, "What are you sharing?", &kb)
		t.AnswerCallback(cb.ID, "")

	default:
		h.invalid(t, cb)
	}
}

// ShareType handles the experience/thought selection and advances the user
// into collecting-submission-text.
func (h *Handlers) ShareType(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	if !act.Arity(1) {
		h.invalid(t, cb)
		return
	}
	shareType := act.String(0)
	if shareType != "experience" && shareType != "thought" {
		h.invalid(t, cb)
		return
	}

	userID := cb.From.ID
	st, ok := h.States.Get(userID)
	if !ok || st.Kind != state.KindAwaitingShareType {
		t.AnswerCallback(cb.ID, "This selection has expired. Send /start to begin again.")
		return
	}

	h.States.Put(userID, state.State{
		Kind:      state.KindCollectingSubmission,
		ShareType: shareType,
		Token:     st.Token,
	})
	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, "✔ Okay — send your text now.", nil)
	t.AnswerCallback(cb.ID, "")
}

// CancelButton clears the user's flow from an inline cancel control.
func (h *Handlers) CancelButton(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	h.States.Clear(cb.From.ID)
	t.EditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, "Cancelled.", nil)
	t.AnswerCallback(cb.ID, "")
}

// Noop acknowledges decorative buttons like the page indicator.
func (h *Handlers) Noop(t telegram.Transport, cb *tgbotapi.CallbackQuery, act handler.Action) {
	t.AnswerCallback(cb.ID, "")
}

// invalid fails a malformed callback closed: acknowledge, notify, mutate
// nothing.
func (h *Handlers) invalid(t telegram.Transport, cb *tgbotapi.CallbackQuery) {
	utils.Log.Warnw("malformed callback", "data", cb.Data, "user_id", cb.From.ID)
	t.AnswerCallback(cb.ID, "Invalid action")
}
