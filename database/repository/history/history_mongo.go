package historyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wirehaul/config"
	"wirehaul/database"
	"wirehaul/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHistoryRepo implements HistoryRepository using MongoDB.
type MongoHistoryRepo struct {
	coll *mongo.Collection
}

// NewMongoHistoryRepo creates a new instance of HistoryRepository using MongoDB.
func NewMongoHistoryRepo() HistoryRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookinghistory")
	repo := &MongoHistoryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create history indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoHistoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "trip_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create history indexes: %w", err)
	}
	return nil
}

// ListByDriver lists history rows for a business driver id, newest first.
func (r *MongoHistoryRepo) ListByDriver(driverID string) ([]models.BookingHistory, error) {
	return r.list(bson.M{"driver_id": driverID})
}

// ListByUser lists history rows for a requester, newest first.
func (r *MongoHistoryRepo) ListByUser(userID string) ([]models.BookingHistory, error) {
	return r.list(bson.M{"user_id": userID})
}

// GetByTripID fetches the mirror row for a trip.
func (r *MongoHistoryRepo) GetByTripID(tripID string) (*models.BookingHistory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hist models.BookingHistory
	err := r.coll.FindOne(ctx, bson.M{"trip_id": tripID}).Decode(&hist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for trip %s: %w", tripID, err)
	}
	return &hist, nil
}

func (r *MongoHistoryRepo) list(filter bson.M) ([]models.BookingHistory, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking history: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.BookingHistory
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode booking history: %w", err)
	}
	return rows, nil
}
