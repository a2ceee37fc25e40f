// Package syncer keeps the comment count shown on a public post in step with
// the live top-level count after every comment mutation.
package syncer

import (
	"avien/db"
	"avien/telegram"
	"avien/utils"
)

// Syncer edits the public post's deep-link button label. It runs as a
// post-commit hook: the comment mutation has already committed, so transport
// failures here are logged and swallowed, never propagated.
type Syncer struct {
	Transport telegram.Transport
	ChannelID int64
}

// New returns a synchronizer for the public channel.
func New(t telegram.Transport, channelID int64) *Syncer {
	return &Syncer{Transport: t, ChannelID: channelID}
}

// SyncCount re-reads the top-level comment count and edits the public post's
// button to match. A submission without a channel message id has not been
// published yet and is left alone.
func (s *Syncer) SyncCount(submissionID int64) {
	sub, err := db.GetSubmission(submissionID)
	if err != nil {
		utils.Log.Errorw("counter sync: load submission", "submission_id", submissionID, "err", err)
		return
	}
	if sub.ChannelMessageID == 0 {
		return // not published yet
	}

	count, err := db.CountTopLevelComments(submissionID)
	if err != nil {
		utils.Log.Errorw("counter sync: count comments", "submission_id", submissionID, "err", err)
		return
	}

	markup := telegram.ChannelMarkup(s.Transport.Username(), submissionID, count)
	if err := s.Transport.EditReplyMarkup(s.ChannelID, sub.ChannelMessageID, markup); err != nil {
		utils.Log.Errorw("counter sync: edit channel button",
			"submission_id", submissionID, "count", count, "err", err)
	}
}
