package booking

import (
	"strings"
	"testing"

	"villabook/models"

	"github.com/stretchr/testify/assert"
)

func completedBooking() models.Booking {
	b := fixtureBooking(models.BookingConfirmed)
	b.StartDate = testNow.AddDate(0, 0, -10)
	b.EndDate = testNow.AddDate(0, 0, -5)
	return b
}

func TestValidateReviewGuest(t *testing.T) {
	b := completedBooking()
	text := "Lovely stay, spotless villa."

	req, err := ValidateReview(b, "guest-1", models.RoleGuest, nil, 5, &text, testNow)

	assert.NoError(t, err)
	assert.Equal(t, "bk-1", req.BookingID)
	assert.Equal(t, "villa-1", req.VillaID)
	assert.Equal(t, "guest-1", req.ReviewerUserID)
	assert.Equal(t, "host-1", req.RevieweeUserID)
	assert.Equal(t, models.RoleGuest, req.ReviewerRole)
	assert.Equal(t, 5, req.Rating)
	assert.Equal(t, &text, req.Text)
}

func TestValidateReviewHostRevieweeIsGuest(t *testing.T) {
	b := completedBooking()

	req, err := ValidateReview(b, "host-1", models.RoleHost, nil, 4, nil, testNow)

	assert.NoError(t, err)
	assert.Equal(t, "guest-1", req.RevieweeUserID)
	assert.Equal(t, models.RoleHost, req.ReviewerRole)
	assert.Nil(t, req.Text)
}

func TestValidateReviewNotEligible(t *testing.T) {
	// Stay not ended yet.
	b := fixtureBooking(models.BookingConfirmed)
	_, err := ValidateReview(b, "guest-1", models.RoleGuest, nil, 5, nil, testNow)
	assert.Equal(t, CodeNotEligible, ErrCode(err))

	// Already reviewed.
	done := completedBooking()
	existing := &models.Review{ID: "rv-1", BookingID: done.ID, ReviewerUserID: "guest-1"}
	_, err = ValidateReview(done, "guest-1", models.RoleGuest, existing, 5, nil, testNow)
	assert.Equal(t, CodeNotEligible, ErrCode(err))

	// Not a party to the booking.
	_, err = ValidateReview(done, "someone-else", models.RoleGuest, nil, 5, nil, testNow)
	assert.Equal(t, CodeNotEligible, ErrCode(err))

	// Never confirmed.
	rejected := fixtureBooking(models.BookingRejected)
	rejected.EndDate = testNow.AddDate(0, 0, -1)
	_, err = ValidateReview(rejected, "guest-1", models.RoleGuest, nil, 5, nil, testNow)
	assert.Equal(t, CodeNotEligible, ErrCode(err))
}

func TestValidateReviewInvalidRating(t *testing.T) {
	b := completedBooking()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := ValidateReview(b, "guest-1", models.RoleGuest, nil, rating, nil, testNow)
		assert.Equal(t, CodeInvalidRating, ErrCode(err), "rating %d", rating)
	}
}

func TestValidateReviewTextTooLong(t *testing.T) {
	b := completedBooking()
	long := strings.Repeat("a", MaxReviewTextLength+1)

	_, err := ValidateReview(b, "guest-1", models.RoleGuest, nil, 3, &long, testNow)
	assert.Equal(t, CodeTextTooLong, ErrCode(err))

	// Exactly at the ceiling passes.
	exact := strings.Repeat("a", MaxReviewTextLength)
	_, err = ValidateReview(b, "guest-1", models.RoleGuest, nil, 3, &exact, testNow)
	assert.NoError(t, err)
}
