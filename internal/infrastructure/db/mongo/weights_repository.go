package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credora/creator-platform/internal/core/domain"
)

const (
	settingsCollection = "settings"
	weightsDocID       = "rating_weights"
)

// WeightsRepository stores the single rating-weights document in the
// settings collection.
type WeightsRepository struct {
	coll *mongo.Collection
}

func NewWeightsRepository(db *mongo.Database) *WeightsRepository {
	return &WeightsRepository{coll: db.Collection(settingsCollection)}
}

type weightsDoc struct {
	ID      string         `bson:"_id"`
	Weights map[string]int `bson:"weights"`
}

// Get returns the stored weight set, falling back to the default even split
// when none has been saved yet.
func (r *WeightsRepository) Get(ctx context.Context) (domain.RatingWeights, error) {
	var doc weightsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": weightsDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.DefaultWeights(), nil
		}
		return nil, fmt.Errorf("load weights: %w", err)
	}
	return domain.RatingWeights(doc.Weights), nil
}

func (r *WeightsRepository) Set(ctx context.Context, w domain.RatingWeights) error {
	doc := weightsDoc{ID: weightsDocID, Weights: map[string]int(w)}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": weightsDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store weights: %w", err)
	}
	return nil
}
