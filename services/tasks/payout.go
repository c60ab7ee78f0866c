package tasks

import (
	"encoding/json"
	"time"

	"villabook/models"

	"github.com/hibiken/asynq"
)

const TypePayoutSettle = "payout:settle"

func NewPayoutSettleTask(payload models.PayoutSettlePayload, settleAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePayoutSettle, b)
	opts := []asynq.Option{asynq.ProcessAt(settleAt)}

	return task, opts, nil
}
