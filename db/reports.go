package db

import (
	"avien/model"
	"time"
)

// HasReport checks whether a reporter has ever reported a comment,
// regardless of the report's status.
func HasReport(commentID, reporterID int64) (bool, error) {
	var n int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM reports WHERE comment_id = ? AND reporter_id = ?",
		commentID, reporterID,
	).Scan(&n)
	return n > 0, err
}

// AddReport inserts a new pending report and returns its id. The unique
// constraint on (comment_id, reporter_id) backs the one-report-per-user rule.
func AddReport(commentID, reporterID int64, reason string) (int64, error) {
	res, err := DB.Exec(`INSERT INTO reports(
		comment_id, reporter_id, reason, status, created_at
	) VALUES(?, ?, ?, ?, ?)`,
		commentID, reporterID, reason, model.ReportPending, time.Now().Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ResolveReports marks all pending reports on a comment resolved.
// Returns the number of reports updated.
func ResolveReports(commentID int64) (int64, error) {
	res, err := DB.Exec(
		"UPDATE reports SET status = ? WHERE comment_id = ? AND status = ?",
		model.ReportResolved, commentID, model.ReportPending,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DismissReports marks all pending reports on a comment dismissed.
// Returns the number of reports updated.
func DismissReports(commentID int64) (int64, error) {
	res, err := DB.Exec(
		"UPDATE reports SET status = ? WHERE comment_id = ? AND status = ?",
		model.ReportDismissed, commentID, model.ReportPending,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListReports returns all reports filed against a comment.
func ListReports(commentID int64) ([]model.Report, error) {
	rows, err := DB.Query(`SELECT id, comment_id, reporter_id, reason, status, created_at
		FROM reports WHERE comment_id = ? ORDER BY id ASC`, commentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(&r.ID, &r.CommentID, &r.ReporterID, &r.Reason, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
