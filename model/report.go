package model

// Report statuses.
const (
	ReportPending   = "pending"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// Report represents a report record from the reports table.
// At most one row exists per (reporter, comment) regardless of status.
type Report struct {
	ID         int64
	CommentID  int64
	ReporterID int64
	Reason     string
	Status     string
	CreatedAt  int64
}
