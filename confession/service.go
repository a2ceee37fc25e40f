// Package confession is the moderation pipeline: a submission is held
// pending, a moderator may rewrite its text, and it transitions to published
// or rejected exactly once.
package confession

import (
	"errors"
	"fmt"

	"avien/db"
	"avien/model"
	"avien/telegram"
)

// ErrAlreadyDecided is returned when a decision replays against a submission
// that is no longer pending. No mutation happens.
var ErrAlreadyDecided = errors.New("submission already decided")

// Service publishes approved confessions to the public channel.
type Service struct {
	Transport telegram.Transport
	ChannelID int64
}

// NewService returns a moderation pipeline posting to channelID.
func NewService(t telegram.Transport, channelID int64) *Service {
	return &Service{Transport: t, ChannelID: channelID}
}

// Submit creates a pending submission and returns its id. The caller emits
// the moderator-facing review request.
func (s *Service) Submit(authorID int64, authorName, shareType, text string) (int64, error) {
	return db.AddSubmission(authorID, authorName, shareType, text)
}

// Reject finalizes a pending submission as rejected. finalText is the
// moderator-edited text recorded as the final version; empty keeps the
// stored text.
func (s *Service) Reject(submissionID int64, finalText string) (*model.Submission, error) {
	sub, err := db.GetSubmission(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.StatusPending {
		return nil, ErrAlreadyDecided
	}

	if finalText == "" {
		finalText = sub.Content
	}

	rows, err := db.RejectSubmission(submissionID, finalText)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyDecided
	}

	sub.Status = model.StatusRejected
	sub.Content = finalText
	return sub, nil
}

// Approve publishes a pending submission to the channel and finalizes it.
// The channel send happens FIRST; the row is only marked published after the
// send is confirmed, so a transport failure leaves the submission pending
// and the moderator can retry. finalText is the moderator-edited text; empty
// keeps the stored text.
func (s *Service) Approve(submissionID int64, finalText string) (*model.Submission, error) {
	sub, err := db.GetSubmission(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.StatusPending {
		return nil, ErrAlreadyDecided
	}

	if finalText == "" {
		finalText = sub.Content
	}

	post := fmt.Sprintf("Confession #%d\n\n%s\n\n#Confession", sub.ID, finalText)
	markup := telegram.ChannelMarkup(s.Transport.Username(), sub.ID, 0)

	messageID, err := s.Transport.SendMessage(s.ChannelID, post, &markup)
	if err != nil {
		// Still pending; surface to the moderator for retry.
		return nil, fmt.Errorf("publish confession %d: %w", sub.ID, err)
	}

	rows, err := db.MarkPublished(submissionID, finalText, messageID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyDecided
	}

	sub.Status = model.StatusPublished
	sub.Content = finalText
	sub.ChannelMessageID = messageID
	return sub, nil
}
