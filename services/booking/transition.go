package booking

import (
	"fmt"
	"strings"

	"villabook/models"
)

// MaxReasonLength is the ceiling on cancellation/rejection reasons.
// Longer input is truncated before validation.
const MaxReasonLength = 300

// reachable lists the statuses a booking may move to from each current
// status. cancelled and rejected are terminal.
var reachable = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingRejected, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCancelled},
}

// Reachable reports whether a booking in the current status may move
// to the requested one.
func Reachable(current, requested string) bool {
	for _, s := range reachable[current] {
		if s == requested {
			return true
		}
	}
	return false
}

// ValidateTransition checks that the requested status is reachable from
// the booking's current status and that a usable reason accompanies a
// cancellation or rejection. On success it returns the immutable
// request value the data-access layer submits; the engine performs no
// update itself.
func ValidateTransition(b models.Booking, requested string, reason string) (models.TransitionRequest, error) {
	if !Reachable(b.Status, requested) {
		return models.TransitionRequest{}, NewLifecycleError(CodeInvalidTransition,
			fmt.Sprintf("cannot move booking from %q to %q", b.Status, requested))
	}

	req := models.TransitionRequest{
		BookingID: b.ID,
		Status:    requested,
	}

	if requested == models.BookingCancelled || requested == models.BookingRejected {
		reason = strings.TrimSpace(reason)
		if runes := []rune(reason); len(runes) > MaxReasonLength {
			reason = string(runes[:MaxReasonLength])
		}
		if reason == "" {
			return models.TransitionRequest{}, NewLifecycleError(CodeMissingReason,
				"a reason is required to cancel or reject a booking")
		}
		req.CancellationReason = reason
	}

	return req, nil
}
