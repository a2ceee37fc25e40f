package db

import "time"

// ToggleFollow follows a submission for the user, or unfollows when a
// follow row already exists. Returns whether the user is now following.
func ToggleFollow(submissionID, userID int64) (bool, error) {
	tx, err := DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var n int
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM follows WHERE submission_id = ? AND user_id = ?",
		submissionID, userID,
	).Scan(&n)
	if err != nil {
		return false, err
	}

	if n > 0 {
		_, err = tx.Exec(
			"DELETE FROM follows WHERE submission_id = ? AND user_id = ?",
			submissionID, userID,
		)
		if err != nil {
			return false, err
		}
		return false, tx.Commit()
	}

	_, err = tx.Exec(
		"INSERT OR IGNORE INTO follows(submission_id, user_id, created_at) VALUES(?, ?, ?)",
		submissionID, userID, time.Now().Unix(),
	)
	if err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// ListFollowers returns the user ids following a submission.
func ListFollowers(submissionID int64) ([]int64, error) {
	rows, err := DB.Query("SELECT user_id FROM follows WHERE submission_id = ?", submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
