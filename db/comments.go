package db

import (
	"avien/model"
	"database/sql"
	"time"
)

// commentColumns selects a comment together with its vote counts derived
// from the votes table. Counts are never stored on the comment row.
const commentColumns = `
	c.id, c.submission_id, c.parent_id, c.author_id,
	COALESCE(c.author_name, '') as author_name, c.content, c.created_at,
	COALESCE(SUM(CASE WHEN v.value = 1 THEN 1 ELSE 0 END), 0) as likes,
	COALESCE(SUM(CASE WHEN v.value = -1 THEN 1 ELSE 0 END), 0) as dislikes`

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanComment scans a row into a Comment struct.
func scanComment(scanner rowScanner) (*model.Comment, error) {
	var c model.Comment
	err := scanner.Scan(
		&c.ID, &c.SubmissionID, &c.ParentID, &c.AuthorID,
		&c.AuthorName, &c.Content, &c.CreatedAt, &c.Likes, &c.Dislikes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// AddComment inserts a new comment. parentID is 0 for top-level comments.
func AddComment(submissionID, parentID, authorID int64, authorName, content string) (int64, error) {
	res, err := DB.Exec(`INSERT INTO comments(
		submission_id, parent_id, author_id, author_name, content, created_at
	) VALUES(?, ?, ?, ?, ?, ?)`,
		submissionID, parentID, authorID, authorName, content, time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetComment retrieves a comment by its id, with live vote counts.
func GetComment(id int64) (*model.Comment, error) {
	row := DB.QueryRow(`SELECT `+commentColumns+`
		FROM comments c
		LEFT JOIN votes v ON v.comment_id = c.id
		WHERE c.id = ?
		GROUP BY c.id`, id)

	return scanComment(row)
}

// ListTopLevelComments returns one page of top-level comments for a
// submission, ranked by net score (likes - dislikes) descending with ties
// broken by insertion order.
func ListTopLevelComments(submissionID int64, limit, offset int) ([]model.Comment, error) {
	rows, err := DB.Query(`SELECT `+commentColumns+`
		FROM comments c
		LEFT JOIN votes v ON v.comment_id = c.id
		WHERE c.submission_id = ? AND c.parent_id = 0
		GROUP BY c.id
		ORDER BY COALESCE(SUM(v.value), 0) DESC, c.id ASC
		LIMIT ? OFFSET ?`, submissionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

// ListReplies returns the direct replies of a comment in insertion order.
func ListReplies(parentID int64) ([]model.Comment, error) {
	rows, err := DB.Query(`SELECT `+commentColumns+`
		FROM comments c
		LEFT JOIN votes v ON v.comment_id = c.id
		WHERE c.parent_id = ?
		GROUP BY c.id
		ORDER BY c.id ASC`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, *c)
	}
	return replies, rows.Err()
}

// CountTopLevelComments returns the number of top-level comments on a
// submission. This is the figure shown on the public post's button.
func CountTopLevelComments(submissionID int64) (int, error) {
	var n int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM comments WHERE submission_id = ? AND parent_id = 0",
		submissionID,
	).Scan(&n)
	return n, err
}

// DeleteCommentCascade removes a comment together with its direct replies,
// deletes all votes on the removed comments and marks their pending reports
// resolved, all in one transaction. Returns the owning submission id so the
// caller can resynchronize the public counter.
func DeleteCommentCascade(commentID int64) (int64, error) {
	tx, err := DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var submissionID int64
	err = tx.QueryRow("SELECT submission_id FROM comments WHERE id = ?", commentID).Scan(&submissionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNotFound
		}
		return 0, err
	}

	_, err = tx.Exec(
		"DELETE FROM votes WHERE comment_id = ? OR comment_id IN (SELECT id FROM comments WHERE parent_id = ?)",
		commentID, commentID,
	)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		`UPDATE reports SET status = ?
		 WHERE status = ?
		   AND (comment_id = ? OR comment_id IN (SELECT id FROM comments WHERE parent_id = ?))`,
		model.ReportResolved, model.ReportPending, commentID, commentID,
	)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec("DELETE FROM comments WHERE id = ? OR parent_id = ?", commentID, commentID)
	if err != nil {
		return 0, err
	}

	return submissionID, tx.Commit()
}
