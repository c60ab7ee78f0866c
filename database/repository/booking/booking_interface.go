package bookingRepo

import (
	"villabook/models"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByGuest(guestUserID string) ([]models.Booking, error)
	GetByHost(hostUserID string) ([]models.Booking, error)
	GetConfirmedByHost(hostUserID string) ([]models.Booking, error)
	// ApplyTransition updates the booking status from one of the expected
	// current statuses. Returns false when no document matched, which
	// means the booking was missing or already moved by a racing request.
	ApplyTransition(req models.TransitionRequest, expectedCurrent []string) (bool, error)
}
