// Package comment creates, pages and deletes comments and replies under a
// published confession.
package comment

import (
	"fmt"

	"avien/db"
	"avien/model"
)

// Manager owns the comment lifecycle. OnCountChanged is the post-commit hook
// fired after every creation or deletion, once the store mutation has
// committed; whatever it does (public-counter sync) must not roll back into
// the mutation.
type Manager struct {
	PageSize int

	OnCountChanged func(submissionID int64)
}

// NewManager returns a manager paging pageSize top-level comments at a time.
func NewManager(pageSize int) *Manager {
	return &Manager{PageSize: pageSize}
}

// Add creates a comment on a submission. parentID 0 creates a top-level
// comment; a non-zero parentID attaches a reply. Replying to a reply
// attaches to that reply's top-level parent, keeping threads one level deep.
func (m *Manager) Add(submissionID, authorID int64, authorName, text string, parentID int64) (int64, error) {
	if _, err := db.GetSubmission(submissionID); err != nil {
		return 0, err
	}

	if parentID != 0 {
		parent, err := db.GetComment(parentID)
		if err != nil {
			return 0, err
		}
		if parent.SubmissionID != submissionID {
			return 0, db.ErrNotFound
		}
		if parent.ParentID != 0 {
			parentID = parent.ParentID
		}
	}

	id, err := db.AddComment(submissionID, parentID, authorID, authorName, text)
	if err != nil {
		return 0, fmt.Errorf("add comment on submission %d: %w", submissionID, err)
	}

	if m.OnCountChanged != nil {
		m.OnCountChanged(submissionID)
	}
	return id, nil
}

// ListPage returns one page of top-level comments with their replies
// attached, the total top-level count, and the page number actually served.
// Out-of-range pages are clamped into [1, ceil(total/PageSize)].
func (m *Manager) ListPage(submissionID int64, page int) ([]model.Comment, int, int, error) {
	total, err := db.CountTopLevelComments(submissionID)
	if err != nil {
		return nil, 0, 0, err
	}

	page = clampPage(page, total, m.PageSize)

	items, err := db.ListTopLevelComments(submissionID, m.PageSize, (page-1)*m.PageSize)
	if err != nil {
		return nil, 0, 0, err
	}

	for i := range items {
		replies, err := db.ListReplies(items[i].ID)
		if err != nil {
			return nil, 0, 0, err
		}
		items[i].Replies = replies
	}

	return items, total, page, nil
}

// TotalPages returns the page count for a top-level comment total.
func (m *Manager) TotalPages(total int) int {
	pages := (total + m.PageSize - 1) / m.PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Count returns the live top-level comment count for a submission.
func (m *Manager) Count(submissionID int64) (int, error) {
	return db.CountTopLevelComments(submissionID)
}

// Delete removes a comment, cascading to its votes and direct replies and
// resolving its pending reports, then fires the count hook for the owning
// submission. Returns the owning submission id.
func (m *Manager) Delete(commentID int64) (int64, error) {
	submissionID, err := db.DeleteCommentCascade(commentID)
	if err != nil {
		return 0, err
	}

	if m.OnCountChanged != nil {
		m.OnCountChanged(submissionID)
	}
	return submissionID, nil
}

func clampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	maxPage := (total + pageSize - 1) / pageSize
	if maxPage < 1 {
		maxPage = 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}
