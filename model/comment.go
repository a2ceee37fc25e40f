package model

// Comment represents a comment record from the comments table.
// ParentID is 0 for top-level comments; replies carry the id of their
// top-level parent (threads are one level deep).
type Comment struct {
	ID           int64
	SubmissionID int64
	ParentID     int64
	AuthorID     int64
	AuthorName   string
	Content      string
	Likes        int
	Dislikes     int
	CreatedAt    int64

	// Replies is filled by the listing layer for display only.
	Replies []Comment
}
