package payout

import (
	"context"
	"fmt"
	"time"

	payoutRepo "villabook/database/repository/payout"
	"villabook/models"
	"villabook/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PayoutService schedules simulated payouts. Settlement is performed
// by the background worker at the payout date; no external payment
// system is involved.
type PayoutService interface {
	Schedule(ctx context.Context, hostUserID string, amount float64, method string, payoutDate time.Time) (*models.Payout, error)
}

// DefaultPayoutService implements PayoutService.
type DefaultPayoutService struct {
	Repo   payoutRepo.PayoutRepository
	Queue  *asynq.Client
	Logger *zap.Logger
}

// Schedule records a pending payout and enqueues its settlement task.
func (s *DefaultPayoutService) Schedule(ctx context.Context, hostUserID string, amount float64, method string, payoutDate time.Time) (*models.Payout, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payout amount must be positive, got %v", amount)
	}

	p := &models.Payout{
		ID:           uuid.New().String(),
		HostUserID:   hostUserID,
		Amount:       amount,
		Status:       models.PayoutPending,
		PayoutDate:   payoutDate,
		PayoutMethod: method,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	task, opts, err := tasks.NewPayoutSettleTask(models.PayoutSettlePayload{
		PayoutID:   p.ID,
		HostUserID: hostUserID,
	}, payoutDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build settlement task: %w", err)
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		return nil, fmt.Errorf("failed to enqueue settlement task: %w", err)
	}

	s.Logger.Info("payout scheduled",
		zap.String("payoutID", p.ID),
		zap.String("hostID", hostUserID),
		zap.Float64("amount", amount),
		zap.Time("payoutDate", payoutDate))
	return p, nil
}
