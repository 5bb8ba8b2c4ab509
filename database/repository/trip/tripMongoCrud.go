// File: database/repository/trip/tripMongoCrud.go
package tripRepo

import (
	"fmt"
	"time"

	"wirehaul/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithHistory inserts the trip and its booking-history mirror inside
// one Mongo session so a partial write never survives.
func (r *MongoTripRepo) CreateWithHistory(trip *models.Trip, hist *models.BookingHistory) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	hist.CreatedAt = now
	hist.UpdatedAt = now

	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.tripColl.InsertOne(sc, trip); err != nil {
			return fmt.Errorf("insert trip failed: %w", err)
		}
		if _, err := r.historyColl.InsertOne(sc, hist); err != nil {
			return fmt.Errorf("insert booking history failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("trip create transaction failed: %w", err)
	}
	return nil
}

// Transition performs the compare-and-set status update and mirrors the
// result into booking history in the same transaction. A conditional
// UpdateOne on the expected from-status is the guard against racing
// transitions; zero matched documents means another writer got there first.
func (r *MongoTripRepo) Transition(tripID string, from, to models.TripStatus, trackingID *string) (bool, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sess, err := r.client.StartSession()
	if err != nil {
		return false, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	applied := false
	txnFn := func(sc mongo.SessionContext) error {
		now := time.Now()

		set := bson.M{"status": to, "updated_at": now}
		if trackingID != nil {
			set["tracking_id"] = *trackingID
		}
		filter := bson.M{"id": tripID, "status": from}

		res, err := r.tripColl.UpdateOne(sc, filter, bson.M{"$set": set})
		if err != nil {
			return fmt.Errorf("trip status update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// Not in the expected state; abort without touching history.
			return nil
		}

		histSet := bson.M{"status": to, "updated_at": now}
		if trackingID != nil {
			histSet["tracking_id"] = *trackingID
		}
		if _, err := r.historyColl.UpdateOne(sc, bson.M{"trip_id": tripID}, bson.M{"$set": histSet}); err != nil {
			return fmt.Errorf("booking history update failed: %w", err)
		}

		applied = true
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		if !applied {
			_ = sc.AbortTransaction(sc)
			return nil
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return false, fmt.Errorf("trip transition transaction failed: %w", err)
	}
	return applied, nil
}
