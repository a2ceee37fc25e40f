package avien

import (
	"avien/handler"
)

// Register registers all handlers for the avien package.
func (h *Handlers) Register() {
	handler.AddCommandHandler("start", h.StartCommand)
	handler.AddCommandHandler("cancel", h.CancelCommand)
	handler.AddCommandHandler("profile", h.ProfileCommand)
	handler.SetTextHandler(h.OnText)

	// 投稿前的条款与类型选择流程
	handler.AddCallbackHandler("terms", h.TermsDecision)
	handler.AddCallbackHandler("type", h.ShareType)

	// Comment hub: add, reply, browse, follow.
	handler.AddCallbackHandler("addc", h.AddCommentButton)
	handler.AddCallbackHandler("reply", h.ReplyButton)
	handler.AddCallbackHandler("browse", h.BrowseComments)
	handler.AddCallbackHandler("follow", h.FollowButton)

	handler.AddCallbackHandler("vote", h.VoteButton)
	handler.AddCallbackHandler("report", h.ReportButton)
	handler.AddCallbackHandler("reason", h.ReasonButton)

	// 审核相关处理器
	handler.AddCallbackHandler("admin", h.AdminAction)

	handler.AddCallbackHandler("profile", h.ProfileButton)
	handler.AddCallbackHandler("cancel", h.CancelButton)
	handler.AddCallbackHandler("noop", h.Noop)
}
