package reviewRepo

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

// ReviewRepository defines persistence operations for reviews.
// Deletion is soft: deleted reviews stay in the collection with
// is_deleted set, excluded from lookups and aggregates.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBookingAndReviewer(bookingID, reviewerUserID string) (*models.Review, error)
	GetByReviewee(revieweeUserID string) ([]models.Review, error)
	GetByVilla(villaID string) ([]models.Review, error)
	SoftDelete(id string) error
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One non-deleted review per (booking, reviewer).
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}, {Key: "reviewer_user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"is_deleted": false}),
		},
		{Keys: bson.D{{Key: "reviewee_user_id", Value: 1}, {Key: "is_deleted", Value: 1}}},
		{Keys: bson.D{{Key: "villa_id", Value: 1}, {Key: "is_deleted", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByBookingAndReviewer retrieves the reviewer's non-deleted review
// for a booking, or nil when none exists.
func (r *MongoReviewRepo) GetByBookingAndReviewer(bookingID, reviewerUserID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"booking_id":       bookingID,
		"reviewer_user_id": reviewerUserID,
		"is_deleted":       false,
	}

	var review models.Review
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review for booking %s: %w", bookingID, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) findAll(filter bson.M) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rv models.Review
		if err := cursor.Decode(&rv); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// GetByReviewee retrieves all non-deleted reviews received by a user.
func (r *MongoReviewRepo) GetByReviewee(revieweeUserID string) ([]models.Review, error) {
	return r.findAll(bson.M{"reviewee_user_id": revieweeUserID, "is_deleted": false})
}

// GetByVilla retrieves all non-deleted reviews for a villa.
func (r *MongoReviewRepo) GetByVilla(villaID string) ([]models.Review, error) {
	return r.findAll(bson.M{"villa_id": villaID, "is_deleted": false})
}

// SoftDelete marks a review as deleted.
func (r *MongoReviewRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_deleted": true}})
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}
