package confession_test

import (
	"errors"
	"testing"

	"avien/comment"
	"avien/confession"
	"avien/db"
	"avien/model"
	"avien/report"
	"avien/syncer"
	"avien/vote"

	"github.com/stretchr/testify/require"
)

// Full lifecycle of one confession: submit, approve, comment, vote, report,
// moderate. Exercises the same wiring main.go sets up, with the counter
// synchronizer hooked into the comment manager.
func TestConfessionLifecycle(t *testing.T) {
	setupDB(t)
	ft := &fakeTransport{}

	svc := confession.NewService(ft, testChannelID)
	comments := comment.NewManager(3)
	counterSync := syncer.New(ft, testChannelID)
	comments.OnCountChanged = counterSync.SyncCount

	// A user submits and a moderator approves.
	subID, err := svc.Submit(100, "Alice", "experience", "Hello")
	require.NoError(t, err)

	published, err := svc.Approve(subID, "")
	require.NoError(t, err)
	require.Equal(t, model.StatusPublished, published.Status)
	require.Len(t, ft.sent, 1)

	// A reader comments; the public button count moves 0 -> 1.
	commentID, err := comments.Add(subID, 200, "Reader", "Nice!", 0)
	require.NoError(t, err)

	require.Len(t, ft.markupEdits, 1)
	edit := ft.markupEdits[0]
	require.Equal(t, testChannelID, edit.chatID)
	require.Equal(t, published.ChannelMessageID, edit.messageID)
	require.Contains(t, edit.markup.InlineKeyboard[0][0].Text, "(1)")

	// An upvote lands.
	likes, dislikes, err := vote.Cast(300, commentID, vote.Up)
	require.NoError(t, err)
	require.Equal(t, 1, likes)
	require.Equal(t, 0, dislikes)

	// Someone reports the comment; a moderator deletes it.
	_, err = report.File(commentID, 400, "Spam/Scam")
	require.NoError(t, err)

	gotSub, err := comments.Delete(commentID)
	require.NoError(t, err)
	require.Equal(t, subID, gotSub)

	_, err = db.GetComment(commentID)
	require.True(t, errors.Is(err, db.ErrNotFound))

	items, total, _, err := comments.ListPage(subID, 1)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, items)

	reports, err := db.ListReports(commentID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, model.ReportResolved, reports[0].Status)

	// The deletion hook pushed the count back to 0.
	require.Len(t, ft.markupEdits, 2)
	require.Contains(t, ft.markupEdits[1].markup.InlineKeyboard[0][0].Text, "(0)")
}
