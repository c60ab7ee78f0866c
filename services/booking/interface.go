package booking

import (
	"context"

	"villabook/models"
)

// BookingDetail is the booking detail view payload: the record itself,
// the viewer's permitted actions, the other party's profile, and the
// viewer's own review if one exists.
type BookingDetail struct {
	Booking     models.Booking       `json:"booking"`
	Permissions models.PermissionSet `json:"permissions"`
	Counterpart *models.User         `json:"counterpart,omitempty"`
	OwnReview   *models.Review       `json:"own_review,omitempty"`
}

// BookingService defines the operations on the booking lifecycle.
type BookingService interface {
	GetBookingDetail(ctx context.Context, bookingID, viewerID, viewerRole string) (*BookingDetail, error)
	ListForGuest(ctx context.Context, guestUserID string) ([]models.Booking, error)
	ListForHost(ctx context.Context, hostUserID string) ([]models.Booking, error)
	ApplyTransition(ctx context.Context, bookingID, viewerID, viewerRole, requested, reason string) (*models.Booking, error)
	SubmitReview(ctx context.Context, bookingID, viewerID, viewerRole string, rating int, text *string) (*models.Review, error)
}

// StatsInvalidator busts cached host dashboard aggregates after a
// write that changes them.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context, hostUserID string) error
}
