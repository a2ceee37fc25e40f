package avien

import (
	"fmt"

	"avien/handler"
	"avien/model"
	"avien/report"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const termsText = "📜 *Terms & Conditions*\n\n" +
	"1. Moderators will review your message.\n" +
	"2. Moderators see your identity during review.\n" +
	"3. Approved messages are posted anonymously.\n" +
	"Click *Accept* to continue."

func termsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Accept Terms", handler.FormatAction("terms", "accept")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Decline", handler.FormatAction("terms", "decline")),
		),
	)
}

func shareTypeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Experience", handler.FormatAction("type", "experience")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💭 Thought", handler.FormatAction("type", "thought")),
		),
	)
}

// hubKeyboard is the menu shown when a reader enters a confession via deep
// link: add a comment, browse the existing ones, follow for updates.
func hubKeyboard(submissionID int64, count int, following bool) tgbotapi.InlineKeyboardMarkup {
	followLabel := "🔔 Follow"
	if following {
		followLabel = "🔕 Unfollow"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add Comment", handler.FormatAction("addc", submissionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📂 Browse Comments (%d)", count),
				handler.FormatAction("browse", submissionID, 1),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(followLabel, handler.FormatAction("follow", submissionID)),
		),
	)
}

// commentKeyboard renders the vote/report/reply controls under one comment.
func commentKeyboard(c *model.Comment, submissionID int64, page int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("👍 %d", c.Likes),
				handler.FormatAction("vote", c.ID, "up", submissionID, page),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("👎 %d", c.Dislikes),
				handler.FormatAction("vote", c.ID, "dw", submissionID, page),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"🚩",
				handler.FormatAction("report", c.ID, submissionID),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"↩️ Reply",
				handler.FormatAction("reply", submissionID, c.ID),
			),
		),
	)
}

// navKeyboard renders the pagination controls. The next affordance is absent
// on the last page, prev on the first.
func navKeyboard(submissionID int64, page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	var nav []tgbotapi.InlineKeyboardButton
	if page > 1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			"⬅ Prev", handler.FormatAction("browse", submissionID, page-1)))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("Page %d/%d", page, totalPages), "noop"))
	if page < totalPages {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			"Next ➡", handler.FormatAction("browse", submissionID, page+1)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		nav,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add Comment", handler.FormatAction("addc", submissionID)),
		),
	)
}

// reasonsKeyboard lays the report reasons out two per row, with a cancel row.
func reasonsKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(report.Reasons); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(report.Reasons[i], handler.FormatAction("reason", i)),
		}
		if i+1 < len(report.Reasons) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				report.Reasons[i+1], handler.FormatAction("reason", i+1)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// reviewKeyboard renders the moderator decision controls on a review message.
func reviewKeyboard(submissionID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", handler.FormatAction("admin", "approve", submissionID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject", handler.FormatAction("admin", "reject", submissionID)),
			tgbotapi.NewInlineKeyboardButtonData("🔨 Ban", handler.FormatAction("admin", "ban", submissionID)),
		),
	)
}

// reportAdminKeyboard renders the moderator controls on a report notice.
func reportAdminKeyboard(commentID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑️ Delete Comment", handler.FormatAction("admin", "delc", commentID)),
			tgbotapi.NewInlineKeyboardButtonData("✅ Dismiss Report", handler.FormatAction("admin", "dismiss", commentID)),
		),
	)
}
