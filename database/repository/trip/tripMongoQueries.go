// File: database/repository/trip/tripMongoQueries.go
package tripRepo

import (
	"errors"
	"fmt"
	"time"

	"wirehaul/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a trip by its unique id.
func (r *MongoTripRepo) GetByID(id string) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.Trip
	err := r.tripColl.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}
	return &trip, nil
}

// GetByTrackingID retrieves a trip by its assigned tracking id.
func (r *MongoTripRepo) GetByTrackingID(trackingID string) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.Trip
	err := r.tripColl.FindOne(ctx, bson.M{"tracking_id": trackingID}).Decode(&trip)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip by tracking id: %w", err)
	}
	return &trip, nil
}

// PendingByDriver lists pending trips addressed to a business driver id,
// newest first.
func (r *MongoTripRepo) PendingByDriver(driverID string) ([]models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"driver_id": driverID, "status": models.TripStatusPending}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.tripColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending trips for driver %s: %w", driverID, err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode pending trips: %w", err)
	}
	return trips, nil
}
