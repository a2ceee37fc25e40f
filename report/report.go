// Package report files abuse reports against comments and resolves them by
// moderator action or comment deletion.
package report

import (
	"errors"
	"fmt"

	"avien/db"
)

// ErrDuplicate is returned when a reporter has already reported the comment,
// in any status. A user may not file twice even after dismissal.
var ErrDuplicate = errors.New("comment already reported by this user")

// Reasons users can pick from when reporting a comment.
var Reasons = []string{
	"Violence",
	"Racism",
	"Sexual Harassment",
	"Hate Speech",
	"Spam/Scam",
	"I don't like it",
}

// ReasonByIndex resolves a reason button's index argument.
func ReasonByIndex(i int) (string, bool) {
	if i < 0 || i >= len(Reasons) {
		return "", false
	}
	return Reasons[i], true
}

// File records a pending report and returns its id. Returns ErrDuplicate if
// the reporter has a prior report on the comment, and db.ErrNotFound if the
// comment no longer exists.
func File(commentID, reporterID int64, reason string) (int64, error) {
	if _, err := db.GetComment(commentID); err != nil {
		return 0, err
	}

	exists, err := db.HasReport(commentID, reporterID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrDuplicate
	}

	id, err := db.AddReport(commentID, reporterID, reason)
	if err != nil {
		return 0, fmt.Errorf("file report on comment %d: %w", commentID, err)
	}
	return id, nil
}

// Dismiss marks the pending reports on a comment dismissed without deleting
// it. Returns how many reports were dismissed.
func Dismiss(commentID int64) (int64, error) {
	return db.DismissReports(commentID)
}

// ResolveByDeletion marks all pending reports on a comment resolved. The
// comment-deletion cascade already does this for the comment and its replies;
// this entry point exists for moderation paths that resolve without cascade.
func ResolveByDeletion(commentID int64) (int64, error) {
	return db.ResolveReports(commentID)
}
