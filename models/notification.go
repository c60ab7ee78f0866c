package models

import "time"

// Notification types emitted by the booking lifecycle.
const (
	NotifBookingConfirmed = "booking_confirmed"
	NotifBookingRejected  = "booking_rejected"
	NotifBookingCancelled = "booking_cancelled"
	NotifReviewReceived   = "review_received"
	NotifPayoutSettled    = "payout_settled"
)

// Notification is an inbox entry for a user, written when the other
// party acts on a shared booking.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	BookingID string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
