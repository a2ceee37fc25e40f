package syncer

import (
	"errors"
	"testing"

	"avien/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	failEdit bool
	edits    []tgbotapi.InlineKeyboardMarkup
}

func (s *stubTransport) SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	return 1, nil
}

func (s *stubTransport) EditMessageText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (s *stubTransport) EditReplyMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) error {
	if s.failEdit {
		return errors.New("transport down")
	}
	s.edits = append(s.edits, markup)
	return nil
}

func (s *stubTransport) AnswerCallback(callbackID, text string) error    { return nil }
func (s *stubTransport) DeleteMessage(chatID int64, messageID int) error { return nil }
func (s *stubTransport) Username() string                                { return "avien_bot" }

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Init(":memory:"))
}

func TestUnpublishedSubmissionIsLeftAlone(t *testing.T) {
	setupDB(t)
	st := &stubTransport{}
	s := New(st, -100555)

	subID, err := db.AddSubmission(100, "Author", "thought", "text")
	require.NoError(t, err)

	s.SyncCount(subID)
	require.Empty(t, st.edits, "pending submissions have no channel post to edit")
}

func TestSyncEditsButtonWithLiveCount(t *testing.T) {
	setupDB(t)
	st := &stubTransport{}
	s := New(st, -100555)

	subID, err := db.AddSubmission(100, "Author", "thought", "text")
	require.NoError(t, err)
	_, err = db.MarkPublished(subID, "text", 42)
	require.NoError(t, err)

	_, err = db.AddComment(subID, 0, 200, "Reader", "one")
	require.NoError(t, err)
	_, err = db.AddComment(subID, 0, 201, "Reader", "two")
	require.NoError(t, err)
	// Replies are not counted on the public button.
	parent, err := db.AddComment(subID, 0, 202, "Reader", "three")
	require.NoError(t, err)
	_, err = db.AddComment(subID, parent, 203, "Reader", "a reply")
	require.NoError(t, err)

	s.SyncCount(subID)

	require.Len(t, st.edits, 1)
	require.Contains(t, st.edits[0].InlineKeyboard[0][0].Text, "(3)")
}

// Counter sync is best effort: a transport outage must not surface to the
// code path that just committed a comment.
func TestTransportFailureIsSwallowed(t *testing.T) {
	setupDB(t)
	st := &stubTransport{failEdit: true}
	s := New(st, -100555)

	subID, err := db.AddSubmission(100, "Author", "thought", "text")
	require.NoError(t, err)
	_, err = db.MarkPublished(subID, "text", 42)
	require.NoError(t, err)

	require.NotPanics(t, func() { s.SyncCount(subID) })

	// Recovery: the next mutation resynchronizes with the correct count.
	st.failEdit = false
	s.SyncCount(subID)
	require.Len(t, st.edits, 1)
	require.Contains(t, st.edits[0].InlineKeyboard[0][0].Text, "(0)")
}

func TestMissingSubmissionIsSwallowed(t *testing.T) {
	setupDB(t)
	st := &stubTransport{}
	s := New(st, -100555)

	require.NotPanics(t, func() { s.SyncCount(9999) })
	require.Empty(t, st.edits)
}
