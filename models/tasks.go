package models

// PayoutSettlePayload is the asynq task payload for the simulated
// payout settlement worker.
type PayoutSettlePayload struct {
	PayoutID   string `json:"payoutId"`
	HostUserID string `json:"hostUserId"`
}
