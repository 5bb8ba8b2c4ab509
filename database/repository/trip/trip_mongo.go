package tripRepo

import (
	"context"
	"fmt"
	"time"

	"wirehaul/config"
	"wirehaul/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTripRepo implements TripRepository using MongoDB. It holds both the
// trips and bookinghistory collections so lifecycle writes can span the
// authoritative record and its mirror in one session.
type MongoTripRepo struct {
	client      *mongo.Client
	tripColl    *mongo.Collection
	historyColl *mongo.Collection
}

// NewMongoTripRepo creates a new instance of TripRepository using MongoDB.
func NewMongoTripRepo() TripRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoTripRepo{
		client:      database.MongoClient,
		tripColl:    db.Collection("trips"),
		historyColl: db.Collection("bookinghistory"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create trip indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tracking_id", Value: 1}}, Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"tracking_id": bson.M{"$type": "string"}})},
		{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.tripColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create trip indexes: %w", err)
	}
	return nil
}
