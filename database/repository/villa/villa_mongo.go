package villaRepo

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

// VillaRepository defines persistence operations for villa listings.
type VillaRepository interface {
	Create(villa *models.Villa) error
	Update(villa *models.Villa) error
	Delete(id string) error
	GetByID(id string) (*models.Villa, error)
	GetByHost(hostUserID string) ([]models.Villa, error)
	GetPublished() ([]models.Villa, error)
	SetStatus(id, hostUserID, status string) (bool, error)
}

// MongoVillaRepo implements VillaRepository using MongoDB.
type MongoVillaRepo struct {
	coll *mongo.Collection
}

// NewMongoVillaRepo creates a new instance of VillaRepository using MongoDB.
func NewMongoVillaRepo() VillaRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("villas")
	repo := &MongoVillaRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVillaRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_user_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new villa document.
func (r *MongoVillaRepo) Create(villa *models.Villa) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	villa.CreatedAt = now
	villa.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, villa)
	if err != nil {
		return fmt.Errorf("failed to create villa: %w", err)
	}
	return nil
}

// Update modifies an existing villa document.
func (r *MongoVillaRepo) Update(villa *models.Villa) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	villa.UpdatedAt = time.Now()
	filter := bson.M{"id": villa.ID}
	update := bson.M{"$set": villa}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update villa with id %s: %w", villa.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("villa with id %s not found", villa.ID)
	}
	return nil
}

// Delete removes a villa document by its ID.
func (r *MongoVillaRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete villa with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("villa with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a villa by its unique ID.
func (r *MongoVillaRepo) GetByID(id string) (*models.Villa, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var villa models.Villa
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&villa); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch villa with id %s: %w", id, err)
	}
	return &villa, nil
}

func (r *MongoVillaRepo) findAll(filter bson.M) ([]models.Villa, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve villas: %w", err)
	}
	defer cursor.Close(ctx)

	var villas []models.Villa
	for cursor.Next(ctx) {
		var v models.Villa
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode villa: %w", err)
		}
		villas = append(villas, v)
	}
	return villas, nil
}

// GetByHost retrieves all villas owned by a host.
func (r *MongoVillaRepo) GetByHost(hostUserID string) ([]models.Villa, error) {
	return r.findAll(bson.M{"host_user_id": hostUserID})
}

// GetPublished retrieves all published villas.
func (r *MongoVillaRepo) GetPublished() ([]models.Villa, error) {
	return r.findAll(bson.M{"status": models.VillaPublished})
}

// SetStatus publishes or unpublishes a villa owned by the given host.
func (r *MongoVillaRepo) SetStatus(id, hostUserID, status string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "host_user_id": hostUserID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to set status for villa %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
