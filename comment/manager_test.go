package comment

import (
	"errors"
	"fmt"
	"testing"

	"avien/db"
	"avien/model"

	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Init(":memory:"))
}

func seedSubmission(t *testing.T) int64 {
	t.Helper()
	id, err := db.AddSubmission(100, "Author", "experience", "confession text")
	require.NoError(t, err)
	return id
}

func TestAddOnMissingSubmission(t *testing.T) {
	setupDB(t)
	m := NewManager(3)

	_, err := m.Add(9999, 1, "Reader", "hello", 0)
	require.True(t, errors.Is(err, db.ErrNotFound))
}

func TestPaginationSevenCommentsPageSizeThree(t *testing.T) {
	setupDB(t)
	m := NewManager(3)
	subID := seedSubmission(t)

	for i := 0; i < 7; i++ {
		_, err := m.Add(subID, int64(i+1), "Reader", fmt.Sprintf("comment %d", i), 0)
		require.NoError(t, err)
	}

	items, total, page, err := m.ListPage(subID, 1)
	require.NoError(t, err)
	require.Equal(t, 7, total)
	require.Equal(t, 1, page)
	require.Len(t, items, 3)

	items, _, page, err = m.ListPage(subID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, page)
	require.Len(t, items, 3)

	items, _, page, err = m.ListPage(subID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, page)
	require.Len(t, items, 1)

	require.Equal(t, 3, m.TotalPages(total), "page 3 is the last page")
}

func TestOutOfRangePagesAreClamped(t *testing.T) {
	setupDB(t)
	m := NewManager(3)
	subID := seedSubmission(t)

	for i := 0; i < 4; i++ {
		_, err := m.Add(subID, int64(i+1), "Reader", "c", 0)
		require.NoError(t, err)
	}

	_, _, page, err := m.ListPage(subID, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page)

	items, _, page, err := m.ListPage(subID, 99)
	require.NoError(t, err)
	require.Equal(t, 2, page)
	require.Len(t, items, 1)

	// Empty submissions still serve page 1.
	emptySub := seedSubmission(t)
	items, total, page, err := m.ListPage(emptySub, 5)
	require.NoError(t, err)
	require.Equal(t, 0, total)
	require.Equal(t, 1, page)
	require.Empty(t, items)
}

// Comments are ranked by net score descending, ties broken by insertion
// order. This pins the ordering decision.
func TestOrderingByNetScoreDescending(t *testing.T) {
	setupDB(t)
	m := NewManager(10)
	subID := seedSubmission(t)

	first, err := m.Add(subID, 1, "Reader", "first", 0)
	require.NoError(t, err)
	second, err := m.Add(subID, 2, "Reader", "second", 0)
	require.NoError(t, err)
	third, err := m.Add(subID, 3, "Reader", "third", 0)
	require.NoError(t, err)

	// second: +2, third: +1, first: -1.
	require.NoError(t, db.ToggleVote(second, 10, 1))
	require.NoError(t, db.ToggleVote(second, 11, 1))
	require.NoError(t, db.ToggleVote(third, 10, 1))
	require.NoError(t, db.ToggleVote(first, 10, -1))

	items, _, _, err := m.ListPage(subID, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, second, items[0].ID)
	require.Equal(t, third, items[1].ID)
	require.Equal(t, first, items[2].ID)

	// Tie between two zero-score comments falls back to insertion order.
	fourth, err := m.Add(subID, 4, "Reader", "fourth", 0)
	require.NoError(t, err)
	items, _, _, err = m.ListPage(subID, 1)
	require.NoError(t, err)
	require.Equal(t, third, items[1].ID)
	require.Less(t, indexOf(t, items, first), indexOf(t, items, fourth))
}

func indexOf(t *testing.T, items []model.Comment, id int64) int {
	t.Helper()
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	t.Fatalf("comment %d not in page", id)
	return -1
}

func TestRepliesAttachedWithoutConsumingPageSlots(t *testing.T) {
	setupDB(t)
	m := NewManager(3)
	subID := seedSubmission(t)

	parent, err := m.Add(subID, 1, "Reader", "parent", 0)
	require.NoError(t, err)
	_, err = m.Add(subID, 2, "Other", "reply one", parent)
	require.NoError(t, err)
	_, err = m.Add(subID, 3, "Third", "reply two", parent)
	require.NoError(t, err)

	items, total, _, err := m.ListPage(subID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, total, "replies are not top-level")
	require.Len(t, items, 1)
	require.Len(t, items[0].Replies, 2)
	require.Equal(t, "reply one", items[0].Replies[0].Content)
}

func TestReplyToReplyAttachesToTopLevelParent(t *testing.T) {
	setupDB(t)
	m := NewManager(3)
	subID := seedSubmission(t)

	parent, err := m.Add(subID, 1, "Reader", "parent", 0)
	require.NoError(t, err)
	reply, err := m.Add(subID, 2, "Other", "reply", parent)
	require.NoError(t, err)

	nested, err := m.Add(subID, 3, "Third", "nested", reply)
	require.NoError(t, err)

	c, err := db.GetComment(nested)
	require.NoError(t, err)
	require.Equal(t, parent, c.ParentID, "threads stay one level deep")
}

func TestDeleteCascades(t *testing.T) {
	setupDB(t)
	m := NewManager(3)
	subID := seedSubmission(t)

	parent, err := m.Add(subID, 1, "Reader", "parent", 0)
	require.NoError(t, err)
	reply, err := m.Add(subID, 2, "Other", "reply", parent)
	require.NoError(t, err)

	require.NoError(t, db.ToggleVote(parent, 10, 1))
	require.NoError(t, db.ToggleVote(reply, 10, -1))
	_, err = db.AddReport(parent, 50, "Spam/Scam")
	require.NoError(t, err)
	_, err = db.AddReport(parent, 51, "Violence")
	require.NoError(t, err)

	gotSub, err := m.Delete(parent)
	require.NoError(t, err)
	require.Equal(t, subID, gotSub)

	_, err = db.GetComment(parent)
	require.True(t, errors.Is(err, db.ErrNotFound))
	_, err = db.GetComment(reply)
	require.True(t, errors.Is(err, db.ErrNotFound), "direct replies are cascaded")

	likes, dislikes, err := db.CountVotes(parent)
	require.NoError(t, err)
	require.Zero(t, likes+dislikes)
	likes, dislikes, err = db.CountVotes(reply)
	require.NoError(t, err)
	require.Zero(t, likes+dislikes)

	reports, err := db.ListReports(parent)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		require.Equal(t, model.ReportResolved, r.Status)
	}

	items, total, _, err := m.ListPage(subID, 1)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, items)
}

func TestDeleteMissingComment(t *testing.T) {
	setupDB(t)
	m := NewManager(3)

	_, err := m.Delete(424242)
	require.True(t, errors.Is(err, db.ErrNotFound))
}

func TestCountHookFiresAfterAddAndDelete(t *testing.T) {
	setupDB(t)
	m := NewManager(3)
	subID := seedSubmission(t)

	var fired []int64
	m.OnCountChanged = func(id int64) { fired = append(fired, id) }

	commentID, err := m.Add(subID, 1, "Reader", "hello", 0)
	require.NoError(t, err)
	require.Equal(t, []int64{subID}, fired)

	_, err = m.Delete(commentID)
	require.NoError(t, err)
	require.Equal(t, []int64{subID, subID}, fired)
}
