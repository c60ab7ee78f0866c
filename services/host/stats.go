package host

import (
	"math"
	"time"

	"villabook/models"
)

// MetricsWindowDays is the rolling horizon for upcoming bookings and
// occupancy. Hard-coded to 30 days, matching the dashboard it feeds.
const MetricsWindowDays = 30

const dayMillis = 24 * 3600 * 1000

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// overlapDays returns the whole-day ceiling of the overlap between the
// booking's stay and the window, zero when they do not intersect.
func overlapDays(start, end, windowStart, windowEnd time.Time) int {
	if start.Before(windowStart) {
		start = windowStart
	}
	if end.After(windowEnd) {
		end = windowEnd
	}
	ms := end.Sub(start).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(math.Ceil(float64(ms) / float64(dayMillis)))
}

// ComputeHostStats aggregates a host's dashboard numbers from snapshot
// collections. Four independent reducers; nothing is mutated and the
// result is deterministic for a fixed now.
//
// Known quirk kept on purpose: occupancy sums overlap per confirmed
// booking without deduplicating bookings that cover the same villa and
// dates, so overbooked ranges can push the raw rate past its cap.
func ComputeHostStats(bookings []models.Booking, payouts []models.Payout, villas []models.Villa, reviews []models.Review, now time.Time) models.HostStats {
	var stats models.HostStats

	for _, p := range payouts {
		if p.Settled() {
			stats.TotalEarnings += p.Amount
		}
	}

	windowEnd := now.Add(MetricsWindowDays * 24 * time.Hour)

	var bookedDays int
	for _, b := range bookings {
		if b.Status != models.BookingConfirmed {
			continue
		}
		if !b.StartDate.Before(now) && !b.StartDate.After(windowEnd) {
			stats.NumUpcomingBookings++
		}
		bookedDays += overlapDays(b.StartDate, b.EndDate, now, windowEnd)
	}

	if len(villas) > 0 {
		rate := 100 * float64(bookedDays) / float64(len(villas)*MetricsWindowDays)
		stats.OccupancyRate = math.Min(100, round2(rate))
	}

	var ratingSum int
	for _, r := range reviews {
		if r.IsDeleted {
			continue
		}
		ratingSum += r.Rating
		stats.ReviewCount++
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = round2(float64(ratingSum) / float64(stats.ReviewCount))
	}

	return stats
}
