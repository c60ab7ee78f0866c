package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"villabook/config"
	payoutRepo "villabook/database/repository/payout"
	"villabook/models"
	"villabook/services/notification"
	"villabook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitPayoutWorker runs the payout settlement worker in background.
// Settlement is simulated: the handler marks the pending payout
// completed at its payout date and drops a notification in the host's
// inbox.
func InitPayoutWorker(repo payoutRepo.PayoutRepository, notifSvc notification.NotificationService, invalidate func(ctx context.Context, hostUserID string) error) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPayoutQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePayoutSettle, handlePayoutSettleTask(repo, notifSvc, invalidate))

	go func() {
		log.Println("[PayoutWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PayoutWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PayoutWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePayoutSettleTask(repo payoutRepo.PayoutRepository, notifSvc notification.NotificationService, invalidate func(ctx context.Context, hostUserID string) error) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PayoutSettlePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PayoutWorker] invalid payload: %v", err)
			return err
		}

		settled, err := repo.MarkCompleted(p.PayoutID)
		if err != nil {
			log.Printf("[PayoutWorker] failed to settle payout %s: %v", p.PayoutID, err)
			return err
		}
		if !settled {
			// Already settled or removed; nothing left to do.
			log.Printf("[PayoutWorker] payout %s not pending, skipping", p.PayoutID)
			return nil
		}

		if err := notifSvc.Notify(ctx, p.HostUserID, models.NotifPayoutSettled,
			"Payout completed", "A payout to your account has been completed.", ""); err != nil {
			log.Printf("[PayoutWorker] failed to notify host %s: %v", p.HostUserID, err)
		}

		if invalidate != nil {
			if err := invalidate(ctx, p.HostUserID); err != nil {
				log.Printf("[PayoutWorker] failed to invalidate stats for host %s: %v", p.HostUserID, err)
			}
		}

		log.Printf("[PayoutWorker] settled payout %s for host %s", p.PayoutID, p.HostUserID)
		return nil
	}
}
