package models

import "time"

// Payout status values. Settlement is simulated: the worker moves
// pending payouts to completed at their payout date.
const (
	PayoutPending   = "pending"
	PayoutCompleted = "completed"
	PayoutPaid      = "paid"
	PayoutFailed    = "failed"
)

// Payout records funds paid (or scheduled to be paid) to a host.
type Payout struct {
	ID           string    `bson:"id" json:"id"`
	HostUserID   string    `bson:"host_user_id" json:"host_user_id"`
	Amount       float64   `bson:"amount" json:"amount"`
	Status       string    `bson:"status" json:"status"`
	PayoutDate   time.Time `bson:"payout_date" json:"payout_date"`
	PayoutMethod string    `bson:"payout_method" json:"payout_method"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Settled reports whether the payout counts toward host earnings.
func (p Payout) Settled() bool {
	return p.Status == PayoutCompleted || p.Status == PayoutPaid
}
