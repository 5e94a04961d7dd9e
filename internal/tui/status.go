package tui

import (
	"errors"
	"fmt"

	"github.com/hnrks/tidings/internal/news"
)

// errorDisplayDuration is how long a failure message stays in the
// status bar before it clears itself. The timer is not cancellable;
// it fires regardless of what happened in between.
const errorDisplayDuration = 5 // seconds

// MsgLoading is the canonical in-progress message.
const MsgLoading = "Loading…"

func MsgPage(page, found int) string {
	if found > 0 {
		return fmt.Sprintf("page %d • %d found", page, found)
	}
	return fmt.Sprintf("page %d", page)
}

// userMessage converts a fetch failure into the single line shown to
// the user. Every failure maps to exactly one message; nothing
// propagates past the controller.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var rateErr *news.RateLimitError
	if errors.As(err, &rateErr) {
		return rateErr.Message
	}

	var statusErr *news.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("The news service returned an error (HTTP %d).", statusErr.Code)
	}

	var cfgErr *news.ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Reason
	}

	return "Could not reach the news service. Check your connection and try again."
}
