// Package state holds the per-user conversation state machine. States are
// ephemeral: they live in memory, expire after a TTL and do not survive a
// restart. A user mid-flow after a redeploy simply starts over.
package state

// Kind tags the conversation state variant.
type Kind int

const (
	// KindNone means the user has no in-progress flow.
	KindNone Kind = iota
	// KindAwaitingTerms means the terms prompt is showing.
	KindAwaitingTerms
	// KindAwaitingShareType means the share-type keyboard is showing.
	KindAwaitingShareType
	// KindCollectingSubmission means the next text is a confession body.
	KindCollectingSubmission
	// KindCollectingComment means the next text is a comment on SubmissionID.
	KindCollectingComment
	// KindCollectingReply means the next text is a reply to ParentID.
	KindCollectingReply
	// KindAwaitingReportReason means a reason button press finalizes a report
	// against CommentID.
	KindAwaitingReportReason
	// KindEditingProfileField means the next text updates the profile Field.
	KindEditingProfileField
)

// State is one user's in-progress flow. Which fields are meaningful depends
// on Kind; the zero value means no flow.
type State struct {
	Kind         Kind
	ShareType    string
	SubmissionID int64
	ParentID     int64
	CommentID    int64
	Field        string

	// Token correlates the log lines of one flow.
	Token string
}
