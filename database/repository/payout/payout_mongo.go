package payoutRepo

import (
	"context"
	"fmt"
	"time"

	"villabook/config"
	"villabook/database"
	"villabook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PayoutRepository defines persistence operations for payouts.
type PayoutRepository interface {
	Create(payout *models.Payout) error
	GetByID(id string) (*models.Payout, error)
	GetByHost(hostUserID string) ([]models.Payout, error)
	// MarkCompleted settles a pending payout. Returns false when the
	// payout was missing or already settled.
	MarkCompleted(id string) (bool, error)
}

// MongoPayoutRepo implements PayoutRepository using MongoDB.
type MongoPayoutRepo struct {
	coll *mongo.Collection
}

// NewMongoPayoutRepo creates a new instance of PayoutRepository using MongoDB.
func NewMongoPayoutRepo() PayoutRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("payouts")
	repo := &MongoPayoutRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPayoutRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_user_id", Value: 1}, {Key: "payout_date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payout document.
func (r *MongoPayoutRepo) Create(payout *models.Payout) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if payout.CreatedAt.IsZero() {
		payout.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, payout)
	if err != nil {
		return fmt.Errorf("failed to create payout: %w", err)
	}
	return nil
}

// GetByID retrieves a payout by its unique ID.
func (r *MongoPayoutRepo) GetByID(id string) (*models.Payout, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payout models.Payout
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payout); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payout with id %s: %w", id, err)
	}
	return &payout, nil
}

// GetByHost retrieves all payouts for a host, newest payout date first.
func (r *MongoPayoutRepo) GetByHost(hostUserID string) ([]models.Payout, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "payout_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"host_user_id": hostUserID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payouts: %w", err)
	}
	defer cursor.Close(ctx)

	var payouts []models.Payout
	for cursor.Next(ctx) {
		var p models.Payout
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payout: %w", err)
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

// MarkCompleted settles a pending payout.
func (r *MongoPayoutRepo) MarkCompleted(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.PayoutPending}
	update := bson.M{"$set": bson.M{"status": models.PayoutCompleted}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to settle payout %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
