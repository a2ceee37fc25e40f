package confession_test

import (
	"errors"
	"fmt"
	"testing"

	"avien/confession"
	"avien/db"
	"avien/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

// fakeTransport records outbound traffic and can fail sends on demand.
type fakeTransport struct {
	failSend bool

	nextMessageID int
	sent          []sentMessage
	markupEdits   []markupEdit
}

type sentMessage struct {
	chatID int64
	text   string
	markup *tgbotapi.InlineKeyboardMarkup
}

type markupEdit struct {
	chatID    int64
	messageID int
	markup    tgbotapi.InlineKeyboardMarkup
}

func (f *fakeTransport) SendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (int, error) {
	if f.failSend {
		return 0, errors.New("transport down")
	}
	f.nextMessageID++
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, markup: markup})
	return f.nextMessageID, nil
}

func (f *fakeTransport) EditMessageText(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	return nil
}

func (f *fakeTransport) EditReplyMarkup(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) error {
	if f.failSend {
		return errors.New("transport down")
	}
	f.markupEdits = append(f.markupEdits, markupEdit{chatID: chatID, messageID: messageID, markup: markup})
	return nil
}

func (f *fakeTransport) AnswerCallback(callbackID, text string) error      { return nil }
func (f *fakeTransport) DeleteMessage(chatID int64, messageID int) error   { return nil }
func (f *fakeTransport) Username() string                                  { return "avien_bot" }

// buttonLabel digs the first button's label out of a keyboard.
func buttonLabel(t *testing.T, markup *tgbotapi.InlineKeyboardMarkup) string {
	t.Helper()
	require.NotNil(t, markup)
	require.NotEmpty(t, markup.InlineKeyboard)
	require.NotEmpty(t, markup.InlineKeyboard[0])
	return markup.InlineKeyboard[0][0].Text
}

const testChannelID int64 = -100555

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Init(":memory:"))
}

func TestSubmitCreatesPending(t *testing.T) {
	setupDB(t)
	svc := confession.NewService(&fakeTransport{}, testChannelID)

	id, err := svc.Submit(100, "Alice", "experience", "Hello")
	require.NoError(t, err)
	require.EqualValues(t, 1, id)

	sub, err := db.GetSubmission(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, sub.Status)
	require.Equal(t, "Hello", sub.Content)
	require.Zero(t, sub.ChannelMessageID)
}

func TestApprovePublishesExactlyOnce(t *testing.T) {
	setupDB(t)
	ft := &fakeTransport{}
	svc := confession.NewService(ft, testChannelID)

	id, err := svc.Submit(100, "Alice", "experience", "Hello")
	require.NoError(t, err)

	sub, err := svc.Approve(id, "")
	require.NoError(t, err)
	require.Equal(t, model.StatusPublished, sub.Status)
	require.NotZero(t, sub.ChannelMessageID)

	require.Len(t, ft.sent, 1)
	require.Equal(t, testChannelID, ft.sent[0].chatID)
	require.Contains(t, ft.sent[0].text, fmt.Sprintf("Confession #%d", id))
	require.Contains(t, buttonLabel(t, ft.sent[0].markup), "(0)", "count starts at zero")

	// Replay: no mutation, no second post.
	_, err = svc.Approve(id, "")
	require.True(t, errors.Is(err, confession.ErrAlreadyDecided))
	_, err = svc.Reject(id, "")
	require.True(t, errors.Is(err, confession.ErrAlreadyDecided))
	require.Len(t, ft.sent, 1)

	stored, err := db.GetSubmission(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusPublished, stored.Status)
}

func TestApproveReadsEditedText(t *testing.T) {
	setupDB(t)
	ft := &fakeTransport{}
	svc := confession.NewService(ft, testChannelID)

	id, err := svc.Submit(100, "Alice", "experience", "raw text with names")
	require.NoError(t, err)

	sub, err := svc.Approve(id, "sanitized text")
	require.NoError(t, err)
	require.Equal(t, "sanitized text", sub.Content)
	require.Contains(t, ft.sent[0].text, "sanitized text")
	require.NotContains(t, ft.sent[0].text, "raw text with names")
}

func TestApproveTransportFailureLeavesPending(t *testing.T) {
	setupDB(t)
	ft := &fakeTransport{failSend: true}
	svc := confession.NewService(ft, testChannelID)

	id, err := svc.Submit(100, "Alice", "experience", "Hello")
	require.NoError(t, err)

	_, err = svc.Approve(id, "")
	require.Error(t, err)
	require.False(t, errors.Is(err, confession.ErrAlreadyDecided))

	sub, err := db.GetSubmission(id)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, sub.Status, "no partial state on publish failure")
	require.Zero(t, sub.ChannelMessageID)

	// The moderator retries once the transport recovers.
	ft.failSend = false
	retried, err := svc.Approve(id, "")
	require.NoError(t, err)
	require.Equal(t, model.StatusPublished, retried.Status)
}

func TestRejectRecordsFinalText(t *testing.T) {
	setupDB(t)
	ft := &fakeTransport{}
	svc := confession.NewService(ft, testChannelID)

	id, err := svc.Submit(100, "Alice", "thought", "original")
	require.NoError(t, err)

	sub, err := svc.Reject(id, "edited before rejection")
	require.NoError(t, err)
	require.Equal(t, model.StatusRejected, sub.Status)
	require.Equal(t, "edited before rejection", sub.Content)
	require.Empty(t, ft.sent, "rejection never posts to the channel")

	_, err = svc.Reject(id, "")
	require.True(t, errors.Is(err, confession.ErrAlreadyDecided))
}

func TestDecideOnMissingSubmission(t *testing.T) {
	setupDB(t)
	svc := confession.NewService(&fakeTransport{}, testChannelID)

	_, err := svc.Approve(9999, "")
	require.True(t, errors.Is(err, db.ErrNotFound))
	_, err = svc.Reject(9999, "")
	require.True(t, errors.Is(err, db.ErrNotFound))
}
