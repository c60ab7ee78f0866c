package models

import "time"

// Booking status values. Transitions are one-directional:
// pending -> confirmed|rejected, confirmed -> cancelled.
// cancelled and rejected are terminal.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingRejected  = "rejected"
)

// Booking represents a guest's stay request for a villa.
type Booking struct {
	ID                 string    `bson:"id" json:"id"`
	VillaID            string    `bson:"villa_id" json:"villa_id"`
	GuestUserID        string    `bson:"guest_user_id" json:"guest_user_id"`
	HostUserID         string    `bson:"host_user_id" json:"host_user_id"`
	Status             string    `bson:"status" json:"status"`
	StartDate          time.Time `bson:"start_date" json:"start_date"`
	EndDate            time.Time `bson:"end_date" json:"end_date"`
	Adults             int       `bson:"adults" json:"adults"`
	Children           int       `bson:"children" json:"children"`
	Infants            int       `bson:"infants" json:"infants"`
	TotalPrice         float64   `bson:"total_price" json:"total_price"`
	CleaningFee        float64   `bson:"cleaning_fee" json:"cleaning_fee"`
	ServiceFee         float64   `bson:"service_fee" json:"service_fee"`
	CancellationReason string    `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}

// Terminal reports whether the booking can no longer change status.
func (b Booking) Terminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingRejected
}

// TransitionRequest is the value submitted to the persistence layer to
// move a booking to a new status. The engine only produces it; the
// data-access layer performs the actual update.
type TransitionRequest struct {
	BookingID          string `bson:"booking_id" json:"booking_id"`
	Status             string `bson:"status" json:"status"`
	CancellationReason string `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
}

// PermissionSet lists the actions a viewer may take on a booking.
type PermissionSet struct {
	CanApprove bool `json:"can_approve"`
	CanReject  bool `json:"can_reject"`
	CanCancel  bool `json:"can_cancel"`
	CanReview  bool `json:"can_review"`
	CanContact bool `json:"can_contact"`
}
