package booking

import (
	"time"

	"villabook/models"
)

// ComputePermissions determines which actions the viewer may take on a
// booking. existing is the viewer's own non-deleted review for this
// booking (nil if none); counterpart is the other party's profile (nil
// when unresolvable). Pure: no clock, repo, or session access.
func ComputePermissions(b models.Booking, viewerID, viewerRole string, existing *models.Review, counterpart *models.User, now time.Time) models.PermissionSet {
	isGuest := viewerID == b.GuestUserID
	isHost := viewerID == b.HostUserID

	stayEnded := b.EndDate.Before(now)

	return models.PermissionSet{
		CanApprove: isHost && b.Status == models.BookingPending,
		CanReject:  isHost && b.Status == models.BookingPending,
		CanCancel: (isGuest && (b.Status == models.BookingPending || b.Status == models.BookingConfirmed)) ||
			(isHost && b.Status == models.BookingConfirmed),
		CanReview: (isGuest || isHost) &&
			b.Status == models.BookingConfirmed &&
			stayEnded &&
			existing == nil,
		CanContact: b.Status != models.BookingCancelled && counterpart != nil,
	}
}

// Counterpart returns the other party's user ID for the viewer, or an
// empty string when the viewer is neither guest nor host.
func Counterpart(b models.Booking, viewerID string) string {
	switch viewerID {
	case b.GuestUserID:
		return b.HostUserID
	case b.HostUserID:
		return b.GuestUserID
	default:
		return ""
	}
}
