// Package avien contains the user- and moderator-facing handlers: it turns
// inbound messages and button presses into calls on the core managers and
// renders the results back as Telegram messages and keyboards.
package avien

import (
	"avien/comment"
	"avien/confession"
	"avien/state"
)

// Handlers bundles the core managers the handler layer dispatches into.
type Handlers struct {
	States      state.Store
	Confessions *confession.Service
	Comments    *comment.Manager

	AdminGroupID int64
	ChannelID    int64
}

// NewHandlers wires the handler layer to its collaborators.
func NewHandlers(states state.Store, svc *confession.Service, comments *comment.Manager, adminGroupID, channelID int64) *Handlers {
	return &Handlers{
		States:       states,
		Confessions:  svc,
		Comments:     comments,
		AdminGroupID: adminGroupID,
		ChannelID:    channelID,
	}
}
