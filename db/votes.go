package db

import (
	"database/sql"
	"time"
)

// GetVote retrieves a voter's current vote value (+1 or -1) on a comment.
func GetVote(commentID, voterID int64) (int, error) {
	var value int
	err := DB.QueryRow(
		"SELECT value FROM votes WHERE comment_id = ? AND voter_id = ?",
		commentID, voterID,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return value, nil
}

// ToggleVote applies a vote with toggle semantics inside one transaction:
// no prior vote inserts the row, a repeated vote in the same direction
// deletes it, and an opposite vote overwrites the value. The insert uses
// ON CONFLICT DO UPDATE so a concurrent first vote from the same voter
// cannot produce two rows.
func ToggleVote(commentID, voterID int64, value int) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRow(
		"SELECT value FROM votes WHERE comment_id = ? AND voter_id = ?",
		commentID, voterID,
	).Scan(&current)

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`
			INSERT INTO votes (comment_id, voter_id, value, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(comment_id, voter_id) DO UPDATE SET
			value = excluded.value,
			created_at = excluded.created_at;
		`, commentID, voterID, value, time.Now().Unix())
	case err != nil:
		return err
	case current == value:
		// Toggle off.
		_, err = tx.Exec(
			"DELETE FROM votes WHERE comment_id = ? AND voter_id = ?",
			commentID, voterID,
		)
	default:
		// Flip.
		_, err = tx.Exec(
			"UPDATE votes SET value = ?, created_at = ? WHERE comment_id = ? AND voter_id = ?",
			value, time.Now().Unix(), commentID, voterID,
		)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CountVotes recomputes the like and dislike counts for a comment from the
// votes table.
func CountVotes(commentID int64) (likes, dislikes int, err error) {
	err = DB.QueryRow(`SELECT
		COALESCE(SUM(CASE WHEN value = 1 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN value = -1 THEN 1 ELSE 0 END), 0)
	FROM votes WHERE comment_id = ?`, commentID).Scan(&likes, &dislikes)
	return likes, dislikes, err
}

// CountVoteRows returns the number of vote rows for a (comment, voter) pair.
func CountVoteRows(commentID, voterID int64) (int, error) {
	var n int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM votes WHERE comment_id = ? AND voter_id = ?",
		commentID, voterID,
	).Scan(&n)
	return n, err
}
