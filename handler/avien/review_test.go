package avien

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractReviewTextReadsEditedBody(t *testing.T) {
	msg := "🛂 *Review Confession #7*\n" +
		"👤 Author: Alice (ID: 100)\n" +
		"📝 Content:\nsanitized body here\n\n" +
		"Moderators: edit this message to sanitize, then decide."

	require.Equal(t, "sanitized body here", extractReviewText(msg))
}

func TestExtractReviewTextMultilineBody(t *testing.T) {
	msg := "📝 Content:\nline one\nline two\n\nModerators: decide."
	require.Equal(t, "line one\nline two", extractReviewText(msg))
}

// Without the markers we cannot tell body from boilerplate, so the stored
// text wins.
func TestExtractReviewTextMissingMarkers(t *testing.T) {
	require.Equal(t, "", extractReviewText("free-form moderator note"))
	require.Equal(t, "", extractReviewText(""))

	// A footer alone is not enough.
	require.Equal(t, "", extractReviewText("Moderators: decide."))
}

func TestExtractReviewTextMissingFooterKeepsTail(t *testing.T) {
	require.Equal(t, "body", extractReviewText("📝 Content:\nbody"))
}
