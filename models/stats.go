package models

// HostStats is the dashboard aggregate for a host: settled earnings,
// bookings starting inside the next 30 days, occupancy over the same
// window, and review aggregates.
type HostStats struct {
	TotalEarnings       float64 `json:"total_earnings"`
	NumUpcomingBookings int     `json:"num_upcoming_bookings"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	AverageRating       float64 `json:"average_rating"`
	ReviewCount         int     `json:"review_count"`
}
