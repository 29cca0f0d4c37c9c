// Package storage implements MongoDB-backed persistence for telemetry
// readings.
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meterseed/internal/models"
)

// ReadingRepository defines the persistence operations the seeder needs.
//
// InsertMany and DeleteAll report the number of affected documents; a
// DeleteAll against an empty collection returns 0 and no error.
type ReadingRepository interface {
	// InsertMany writes the records in a single bulk operation and
	// returns the number of documents inserted.
	InsertMany(ctx context.Context, records []models.TelemetryRecord) (int64, error)

	// DeleteAll removes every reading in the collection and returns the
	// number of documents deleted.
	DeleteAll(ctx context.Context) (int64, error)

	// Close releases the underlying connection. Should be deferred
	// right after the repository is created.
	Close(ctx context.Context) error
}

// MongoRepo implements ReadingRepository against a single MongoDB
// collection.
type MongoRepo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRepo connects to MongoDB, verifies the connection with a ping
// and ensures the date index the dashboard queries rely on.
func NewMongoRepo(ctx context.Context, uri, database, collection string) (*MongoRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	coll := client.Database(database).Collection(collection)

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create date index: %w", err)
	}

	return &MongoRepo{client: client, collection: coll}, nil
}

func (r *MongoRepo) InsertMany(ctx context.Context, records []models.TelemetryRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = rec
	}

	res, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert readings: %w", err)
	}
	return int64(len(res.InsertedIDs)), nil
}

func (r *MongoRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete readings: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// Compile-time interface implementation check
var _ ReadingRepository = (*MongoRepo)(nil)
