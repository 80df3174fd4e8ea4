// Package repository persists the user-configured forecast locations. The
// forecast records themselves are never stored; only the chosen URL path and
// its derived display name survive restarts.
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kmorisaki/tenkijp-weather-service/internal/model"
)

const locationsCollection = "locations"

// ErrLocationExists is returned when a url path is already configured.
var ErrLocationExists = errors.New("location with the given url path already exists")

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates new repository from mongo database.
func New() (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	db := client.Database(os.Getenv("DB_NAME"))

	err = createIndexes(ctxWithTimeout, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// CreateIndexes creates necessary indexes for collections.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexModelLocations := mongo.IndexModel{
		Keys:    bson.M{"urlPath": 1},
		Options: options.Index().SetUnique(true),
	}

	_, err := db.Collection(locationsCollection).Indexes().CreateOne(ctx, indexModelLocations)
	if err != nil {
		return fmt.Errorf("failed to create unique url path index: %w", err)
	}

	return nil
}

// InsertLocation stores a newly configured location.
func (r *Repository) InsertLocation(ctx context.Context, loc *model.Location) error {
	_, err := r.db.Collection(locationsCollection).InsertOne(ctx, loc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrLocationExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	return nil
}

// GetLocations returns every configured location.
func (r *Repository) GetLocations(ctx context.Context) ([]*model.Location, error) {
	cursor, err := r.db.Collection(locationsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find locations: %w", err)
	}

	var locations []*model.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}

	return locations, nil
}

// Close disconnects the underlying mongo client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
