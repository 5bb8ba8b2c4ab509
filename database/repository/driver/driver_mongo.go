package driverRepo

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"wirehaul/config"
	"wirehaul/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDriverRepo implements DriverRepository using MongoDB.
type MongoDriverRepo struct {
	coll *mongo.Collection
}

// NewMongoDriverRepo creates a new instance of DriverRepository using MongoDB.
func NewMongoDriverRepo() DriverRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("drivers")
	repo := &MongoDriverRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create driver indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDriverRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "driver_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "auth_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create driver indexes: %w", err)
	}
	return nil
}

const driverIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newDriverID produces a business driver id of the form DXL/<8 alnum>.
func newDriverID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate driver id: %w", err)
	}
	for i, b := range buf {
		buf[i] = driverIDCharset[int(b)%len(driverIDCharset)]
	}
	return "DXL/" + string(buf), nil
}
