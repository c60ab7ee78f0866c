package host

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "villabook/database/repository/booking"
	payoutRepo "villabook/database/repository/payout"
	reviewRepo "villabook/database/repository/review"
	villaRepo "villabook/database/repository/villa"
	"villabook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// HostService exposes the host dashboard.
type HostService interface {
	GetDashboard(ctx context.Context, hostUserID string) (*models.HostStats, error)
	ListPayouts(ctx context.Context, hostUserID string) ([]models.Payout, error)
	InvalidateStats(ctx context.Context, hostUserID string) error
}

// DefaultHostService fetches the four snapshot collections, runs the
// pure aggregation and memoizes the result in Redis for a short TTL.
type DefaultHostService struct {
	BookingRepo bookingRepo.BookingRepository
	PayoutRepo  payoutRepo.PayoutRepository
	VillaRepo   villaRepo.VillaRepository
	ReviewRepo  reviewRepo.ReviewRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

func statsCacheKey(hostUserID string) string {
	return "hoststats:" + hostUserID
}

// GetDashboard returns the host's aggregated dashboard stats.
func (s *DefaultHostService) GetDashboard(ctx context.Context, hostUserID string) (*models.HostStats, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, statsCacheKey(hostUserID)).Result(); err == nil {
			var cached models.HostStats
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	bookings, err := s.BookingRepo.GetByHost(hostUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for host %s: %w", hostUserID, err)
	}
	payouts, err := s.PayoutRepo.GetByHost(hostUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payouts for host %s: %w", hostUserID, err)
	}
	villas, err := s.VillaRepo.GetByHost(hostUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load villas for host %s: %w", hostUserID, err)
	}
	reviews, err := s.ReviewRepo.GetByReviewee(hostUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews for host %s: %w", hostUserID, err)
	}

	stats := ComputeHostStats(bookings, payouts, villas, reviews, time.Now())

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey(hostUserID), data, s.CacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache host stats", zap.String("hostID", hostUserID), zap.Error(err))
			}
		}
	}

	return &stats, nil
}

// ListPayouts returns the host's payout history, newest first.
func (s *DefaultHostService) ListPayouts(ctx context.Context, hostUserID string) ([]models.Payout, error) {
	return s.PayoutRepo.GetByHost(hostUserID)
}

// InvalidateStats drops the cached dashboard after a write that
// changes it.
func (s *DefaultHostService) InvalidateStats(ctx context.Context, hostUserID string) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Del(ctx, statsCacheKey(hostUserID)).Err()
}
