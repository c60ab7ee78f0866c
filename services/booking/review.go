package booking

import (
	"fmt"
	"time"

	"villabook/models"
)

// MaxReviewTextLength is the ceiling on review text. The form layer
// clamps input to the same limit; the engine rejects anything longer.
const MaxReviewTextLength = 3000

// ValidateReview checks that the viewer may review the booking and
// that the rating and text are well formed. existing is the viewer's
// own non-deleted review (nil if none). On success it returns the
// request value for the persistence layer, with the reviewee resolved
// to the other party.
func ValidateReview(b models.Booking, viewerID, viewerRole string, existing *models.Review, rating int, text *string, now time.Time) (models.ReviewRequest, error) {
	// Contact resolvability is irrelevant to review eligibility, so the
	// counterpart argument is satisfied with the viewer's own identity.
	perms := ComputePermissions(b, viewerID, viewerRole, existing, &models.User{ID: viewerID}, now)
	if !perms.CanReview {
		return models.ReviewRequest{}, NewLifecycleError(CodeNotEligible,
			"viewer is not eligible to review this booking")
	}

	if rating < 1 || rating > 5 {
		return models.ReviewRequest{}, NewLifecycleError(CodeInvalidRating,
			fmt.Sprintf("rating must be an integer between 1 and 5, got %d", rating))
	}

	if text != nil && len([]rune(*text)) > MaxReviewTextLength {
		return models.ReviewRequest{}, NewLifecycleError(CodeTextTooLong,
			fmt.Sprintf("review text exceeds %d characters", MaxReviewTextLength))
	}

	isGuest := viewerID == b.GuestUserID
	role := models.RoleHost
	if isGuest {
		role = models.RoleGuest
	}

	return models.ReviewRequest{
		BookingID:      b.ID,
		VillaID:        b.VillaID,
		ReviewerUserID: viewerID,
		RevieweeUserID: Counterpart(b, viewerID),
		ReviewerRole:   role,
		Rating:         rating,
		Text:           text,
	}, nil
}
