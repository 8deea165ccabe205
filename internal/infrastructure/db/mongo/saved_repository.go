package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const savedCollection = "saved_creators"

// SavedListRepository persists the per-user saved-creator relation. Saves are
// upserts keyed on (user_id, creator_id), so re-saving is idempotent.
type SavedListRepository struct {
	coll *mongo.Collection
}

func NewSavedListRepository(db *mongo.Database) *SavedListRepository {
	return &SavedListRepository{coll: db.Collection(savedCollection)}
}

type savedEntry struct {
	UserID    string `bson:"user_id"`
	CreatorID string `bson:"creator_id"`
	SavedAt   int64  `bson:"saved_at"`
}

func (r *SavedListRepository) Save(ctx context.Context, userID, creatorID string, at time.Time) error {
	filter := bson.M{"user_id": userID, "creator_id": creatorID}
	update := bson.M{"$setOnInsert": savedEntry{
		UserID:    userID,
		CreatorID: creatorID,
		SavedAt:   at.Unix(),
	}}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save creator: %w", err)
	}
	return nil
}

func (r *SavedListRepository) Remove(ctx context.Context, userID, creatorID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "creator_id": creatorID}); err != nil {
		return fmt.Errorf("unsave creator: %w", err)
	}
	return nil
}

func (r *SavedListRepository) ListCreatorIDs(ctx context.Context, userID string) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list saved creators: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []savedEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode saved creators: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CreatorID)
	}
	return ids, nil
}
