// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"villabook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ApplyTransition moves a booking to the requested status, filtered on
// the expected current statuses so a racing request cannot apply the
// same transition twice.
func (r *MongoBookingRepo) ApplyTransition(req models.TransitionRequest, expectedCurrent []string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     req.BookingID,
		"status": bson.M{"$in": expectedCurrent},
	}
	set := bson.M{"status": req.Status}
	if req.CancellationReason != "" {
		set["cancellation_reason"] = req.CancellationReason
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to apply transition for booking %s: %w", req.BookingID, err)
	}
	return res.MatchedCount > 0, nil
}
