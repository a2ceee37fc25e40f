// Package vote enforces the one-vote-per-(voter, comment) invariant with
// toggle-on-repeat semantics and derives live like/dislike counts.
package vote

import (
	"fmt"

	"avien/db"
)

// Direction is the way a vote points.
type Direction string

const (
	// Up is a like.
	Up Direction = "up"
	// Down is a dislike.
	Down Direction = "dw"
)

// Value maps a direction to its stored vote value.
func (d Direction) Value() int {
	if d == Up {
		return 1
	}
	return -1
}

// ParseDirection validates a direction received from a callback argument.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), true
	default:
		return "", false
	}
}

// Cast applies one vote action and returns freshly recomputed counts.
// No prior vote inserts one, a repeat in the same direction cancels it,
// and an opposite vote flips it. Counts are never served from a cache:
// moderation or concurrent votes can change them between render and click.
func Cast(voterID, commentID int64, d Direction) (likes, dislikes int, err error) {
	if _, err := db.GetComment(commentID); err != nil {
		return 0, 0, err
	}

	if err := db.ToggleVote(commentID, voterID, d.Value()); err != nil {
		return 0, 0, fmt.Errorf("toggle vote on comment %d: %w", commentID, err)
	}

	return db.CountVotes(commentID)
}
