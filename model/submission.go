package model

// Submission statuses. A submission is decided exactly once:
// pending -> published or pending -> rejected.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusRejected  = "rejected"
)

// Submission represents a confession record from the submissions table.
type Submission struct {
	ID               int64
	AuthorID         int64
	AuthorName       string
	ShareType        string
	Content          string
	Status           string
	ChannelMessageID int
	CreatedAt        int64
}
