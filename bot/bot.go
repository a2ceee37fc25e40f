// Package bot runs the update dispatch loop.
package bot

import (
	"avien/handler"
	"avien/telegram"
	"avien/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Run consumes the long-poll channel and handles each update to completion
// before taking the next one, so no two events from the same user ever race
// against the same conversation state. Blocks until the client stops.
func Run(client *telegram.Client) {
	for update := range client.Updates() {
		handleUpdate(client, update)
	}
}

// handleUpdate dispatches one update. A panic in any handler is confined to
// that event; the loop must keep serving everyone else.
func handleUpdate(t telegram.Transport, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			utils.Log.Errorw("handler panic recovered", "update_id", update.UpdateID, "panic", r)
		}
	}()

	handler.OnUpdate(t, update)
}
