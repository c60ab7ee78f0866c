package booking

import (
	"strings"
	"testing"

	"villabook/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransitionApprove(t *testing.T) {
	b := fixtureBooking(models.BookingPending)

	req, err := ValidateTransition(b, models.BookingConfirmed, "")

	assert.NoError(t, err)
	assert.Equal(t, models.TransitionRequest{
		BookingID: "bk-1",
		Status:    models.BookingConfirmed,
	}, req)
}

func TestValidateTransitionCancelWithReason(t *testing.T) {
	b := fixtureBooking(models.BookingPending)

	req, err := ValidateTransition(b, models.BookingCancelled, "Change of plans")

	assert.NoError(t, err)
	assert.Equal(t, models.TransitionRequest{
		BookingID:          "bk-1",
		Status:             models.BookingCancelled,
		CancellationReason: "Change of plans",
	}, req)
}

func TestValidateTransitionCancelMissingReason(t *testing.T) {
	b := fixtureBooking(models.BookingPending)

	_, err := ValidateTransition(b, models.BookingCancelled, "")
	assert.Equal(t, CodeMissingReason, ErrCode(err))

	// Whitespace-only reasons are rejected too.
	_, err = ValidateTransition(b, models.BookingCancelled, "   \t\n ")
	assert.Equal(t, CodeMissingReason, ErrCode(err))
}

func TestValidateTransitionRejectRequiresReason(t *testing.T) {
	b := fixtureBooking(models.BookingPending)

	_, err := ValidateTransition(b, models.BookingRejected, "")
	assert.Equal(t, CodeMissingReason, ErrCode(err))

	req, err := ValidateTransition(b, models.BookingRejected, "Dates unavailable")
	assert.NoError(t, err)
	assert.Equal(t, "Dates unavailable", req.CancellationReason)
}

func TestValidateTransitionTerminalStates(t *testing.T) {
	cancelled := fixtureBooking(models.BookingCancelled)
	rejected := fixtureBooking(models.BookingRejected)

	for _, requested := range []string{models.BookingConfirmed, models.BookingCancelled, models.BookingRejected, models.BookingPending} {
		_, err := ValidateTransition(cancelled, requested, "reason")
		assert.Equal(t, CodeInvalidTransition, ErrCode(err), "cancelled -> %s", requested)

		_, err = ValidateTransition(rejected, requested, "reason")
		assert.Equal(t, CodeInvalidTransition, ErrCode(err), "rejected -> %s", requested)
	}
}

func TestValidateTransitionConfirmedOnlyCancellable(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)

	_, err := ValidateTransition(b, models.BookingConfirmed, "")
	assert.Equal(t, CodeInvalidTransition, ErrCode(err))

	_, err = ValidateTransition(b, models.BookingRejected, "too late")
	assert.Equal(t, CodeInvalidTransition, ErrCode(err))

	req, err := ValidateTransition(b, models.BookingCancelled, "Emergency")
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, req.Status)
}

func TestValidateTransitionReasonTruncated(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)
	long := strings.Repeat("x", MaxReasonLength+50)

	req, err := ValidateTransition(b, models.BookingCancelled, long)

	assert.NoError(t, err)
	assert.Len(t, []rune(req.CancellationReason), MaxReasonLength)
}

func TestValidateTransitionReasonTrimmed(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)

	req, err := ValidateTransition(b, models.BookingCancelled, "  roof damage  ")

	assert.NoError(t, err)
	assert.Equal(t, "roof damage", req.CancellationReason)
}
