package businessRepo

import (
	"context"
	"fmt"

	"llcdirectory/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoSource serves businesses from a MongoDB collection populated by the importer.
// A collection that has never been created counts as unavailable.
type MongoSource struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoSource(coll *mongo.Collection, logger *zap.Logger) *MongoSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MongoSource{coll: coll, logger: logger}
}

func (r *MongoSource) exists(ctx context.Context) (bool, error) {
	names, err := r.coll.Database().ListCollectionNames(ctx, bson.M{"name": r.coll.Name()})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	return len(names) > 0, nil
}

func (r *MongoSource) Businesses(ctx context.Context) ([]models.LocalBusiness, error) {
	ok, err := r.exists(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: collection %s", ErrSourceUnavailable, r.coll.Name())
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.LocalBusiness
	for cursor.Next(ctx) {
		var b models.LocalBusiness
		if err := cursor.Decode(&b); err != nil {
			r.logger.Warn("skipping undecodable business",
				zap.String("collection", r.coll.Name()),
				zap.Stringer("id", cursor.Current.Lookup("_id")),
				zap.Error(err),
			)
			continue
		}
		businesses = append(businesses, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate businesses: %w", err)
	}
	return normalizeBusinesses(businesses), nil
}

func (r *MongoSource) States(ctx context.Context) ([]string, error) {
	ok, err := r.exists(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: collection %s", ErrSourceUnavailable, r.coll.Name())
	}

	values, err := r.coll.Distinct(ctx, "us_state", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct states: %w", err)
	}
	raw := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			raw = append(raw, s)
		}
	}
	return uniqueStates(raw), nil
}

// ReplaceAll swaps the collection contents for businesses.
func (r *MongoSource) ReplaceAll(ctx context.Context, businesses []models.LocalBusiness) (int, error) {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear businesses: %w", err)
	}
	if len(businesses) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(businesses))
	for i, b := range businesses {
		docs[i] = b
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert businesses: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// EnsureIndexes creates the state index used by per-state lookups.
func (r *MongoSource) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "us_state", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "city", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
