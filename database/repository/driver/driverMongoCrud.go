// File: database/repository/driver/driverMongoCrud.go
package driverRepo

import (
	"errors"
	"fmt"
	"time"

	"wirehaul/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new driver profile document, assigning the business id
// exactly once.
func (r *MongoDriverRepo) Create(driver *models.Driver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if driver.DriverID == "" {
		id, err := newDriverID()
		if err != nil {
			return err
		}
		driver.DriverID = id
	}

	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, driver); err != nil {
		return fmt.Errorf("failed to create driver profile: %w", err)
	}
	return nil
}

// GetByDriverID retrieves a driver by business id.
func (r *MongoDriverRepo) GetByDriverID(driverID string) (*models.Driver, error) {
	return r.findOne(bson.M{"driver_id": driverID})
}

// GetByAuthID retrieves a driver by the identity weak reference.
func (r *MongoDriverRepo) GetByAuthID(authID string) (*models.Driver, error) {
	return r.findOne(bson.M{"auth_id": authID})
}

func (r *MongoDriverRepo) findOne(filter bson.M) (*models.Driver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var driver models.Driver
	err := r.coll.FindOne(ctx, filter).Decode(&driver)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}
	return &driver, nil
}

// UpdateLocation stores the driver's last reported position. Concurrent
// writes are last-write-wins.
func (r *MongoDriverRepo) UpdateLocation(authID string, loc *models.GeoPoint) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"location": loc, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"auth_id": authID}, update)
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("driver with auth id %s not found", authID)
	}
	return nil
}

// SetActiveTrip records the driver's single active trip.
func (r *MongoDriverRepo) SetActiveTrip(driverID string, tripID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active_trip_id": tripID, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"driver_id": driverID}, update)
	if err != nil {
		return fmt.Errorf("failed to set active trip for driver %s: %w", driverID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("driver %s not found", driverID)
	}
	return nil
}

// ClearActiveTrip resets the driver after completion: active trip and
// location are cleared so the next lookup reports no coordinates.
func (r *MongoDriverRepo) ClearActiveTrip(driverID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$unset": bson.M{"active_trip_id": "", "location": ""},
		"$set":   bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"driver_id": driverID}, update)
	if err != nil {
		return fmt.Errorf("failed to reset driver %s: %w", driverID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("driver %s not found", driverID)
	}
	return nil
}
