package models

import "time"

// Reviewer roles.
const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

// Review ties a reviewer to a reviewee for a specific booking.
// At most one non-deleted review exists per (booking, reviewer) pair.
type Review struct {
	ID             string    `bson:"id" json:"id"`
	BookingID      string    `bson:"booking_id" json:"booking_id"`
	VillaID        string    `bson:"villa_id" json:"villa_id"`
	ReviewerUserID string    `bson:"reviewer_user_id" json:"reviewer_user_id"`
	RevieweeUserID string    `bson:"reviewee_user_id" json:"reviewee_user_id"`
	ReviewerRole   string    `bson:"reviewer_role" json:"reviewer_role"`
	Rating         int       `bson:"rating" json:"rating"`
	Text           string    `bson:"text,omitempty" json:"text,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	IsDeleted      bool      `bson:"is_deleted" json:"is_deleted"`
}

// ReviewRequest is the value submitted to the persistence layer to
// create a review.
type ReviewRequest struct {
	BookingID      string  `json:"booking_id"`
	VillaID        string  `json:"villa_id"`
	ReviewerUserID string  `json:"reviewer_user_id"`
	RevieweeUserID string  `json:"reviewee_user_id"`
	ReviewerRole   string  `json:"reviewer_role"`
	Rating         int     `json:"rating"`
	Text           *string `json:"text"`
}
