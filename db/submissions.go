package db

import (
	"avien/model"
	"database/sql"
	"time"
)

// AddSubmission inserts a new pending submission and returns its sequential id.
func AddSubmission(authorID int64, authorName, shareType, content string) (int64, error) {
	tx, err := DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Rollback on error

	id, err := nextConfessionID(tx)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(`INSERT INTO submissions(
		id, author_id, author_name, share_type, content, status, created_at
	) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		id, authorID, authorName, shareType, content, model.StatusPending, time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// GetSubmission retrieves a submission by its id.
func GetSubmission(id int64) (*model.Submission, error) {
	row := DB.QueryRow(`SELECT
		id, author_id, COALESCE(author_name, '') as author_name,
		COALESCE(share_type, '') as share_type, content, status,
		channel_message_id, created_at
	FROM submissions WHERE id = ?`, id)

	var sub model.Submission
	err := row.Scan(
		&sub.ID, &sub.AuthorID, &sub.AuthorName, &sub.ShareType,
		&sub.Content, &sub.Status, &sub.ChannelMessageID, &sub.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// RejectSubmission finalizes a pending submission as rejected with its
// final text. Returns the number of rows updated; 0 means the submission
// was no longer pending.
func RejectSubmission(id int64, content string) (int64, error) {
	res, err := DB.Exec(
		"UPDATE submissions SET status = ?, content = ? WHERE id = ? AND status = ?",
		model.StatusRejected, content, id, model.StatusPending,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkPublished finalizes a pending submission as published, recording the
// final text and the channel message id of the public post. Must only be
// called after the channel send has been confirmed.
func MarkPublished(id int64, content string, channelMessageID int) (int64, error) {
	res, err := DB.Exec(
		"UPDATE submissions SET status = ?, content = ?, channel_message_id = ? WHERE id = ? AND status = ?",
		model.StatusPublished, content, channelMessageID, id, model.StatusPending,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
