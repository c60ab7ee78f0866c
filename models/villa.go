package models

import "time"

// Villa status values.
const (
	VillaPublished   = "published"
	VillaUnpublished = "unpublished"
)

// Villa is a listing owned by a host.
type Villa struct {
	ID            string    `bson:"id" json:"id"`
	HostUserID    string    `bson:"host_user_id" json:"host_user_id"`
	Name          string    `bson:"name" json:"name"`
	Location      string    `bson:"location" json:"location"`
	PricePerNight float64   `bson:"price_per_night" json:"price_per_night"`
	MaxGuests     int       `bson:"max_guests" json:"max_guests"`
	Bedrooms      int       `bson:"bedrooms" json:"bedrooms"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
