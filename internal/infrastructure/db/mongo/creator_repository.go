package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credora/creator-platform/internal/core/domain"
	"github.com/credora/creator-platform/internal/core/ports"
)

const creatorCollection = "creators"

// CreatorRepository persists creator profiles in MongoDB.
type CreatorRepository struct {
	coll *mongo.Collection
}

func NewCreatorRepository(db *mongo.Database) *CreatorRepository {
	return &CreatorRepository{coll: db.Collection(creatorCollection)}
}

// List translates the explore filter into a single Mongo query, sorted by
// credibility rating descending.
func (r *CreatorRepository) List(ctx context.Context, filter ports.CreatorFilter) ([]domain.Creator, error) {
	query := bson.M{}

	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if len(filter.Categories) > 0 {
		query["category"] = bson.M{"$in": filter.Categories}
	}
	if len(filter.TrustTags) > 0 {
		query["trust_tags"] = bson.M{"$in": filter.TrustTags}
	}
	if filter.Verified != nil {
		query["verified"] = *filter.Verified
	}
	if filter.RatingMin > 0 || filter.RatingMax < 100 {
		query["credibility_rating"] = bson.M{"$gte": filter.RatingMin, "$lte": filter.RatingMax}
	}
	if len(filter.Platforms) > 0 {
		or := make([]bson.M, 0, len(filter.Platforms))
		for _, p := range filter.Platforms {
			or = append(or, bson.M{"platforms." + p: bson.M{"$exists": true, "$ne": ""}})
		}
		query["$or"] = or
	}

	opts := options.Find().SetSort(bson.D{{Key: "credibility_rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}
	defer cursor.Close(ctx)

	var creators []domain.Creator
	if err := cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("decode creators: %w", err)
	}
	return creators, nil
}

func (r *CreatorRepository) FindByID(ctx context.Context, id string) (*domain.Creator, error) {
	var creator domain.Creator
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&creator); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, fmt.Errorf("find creator: %w", err)
	}
	return &creator, nil
}

func (r *CreatorRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Creator, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find creators: %w", err)
	}
	defer cursor.Close(ctx)

	var creators []domain.Creator
	if err := cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("decode creators: %w", err)
	}
	return creators, nil
}

// factorFields maps rating factor names onto creator document fields. Only
// known factors are persisted; anything else in the assignment is ignored.
var factorFields = map[string]string{
	domain.FactorContentQuality:    "content_quality",
	domain.FactorEngagementQuality: "engagement_quality",
	domain.FactorGrowthStability:   "growth_stability",
	domain.FactorAuthenticity:      "authenticity",
}

// ApplyRating atomically sets the factor values plus the new score and
// appends the history entry.
func (r *CreatorRepository) ApplyRating(ctx context.Context, id string, factors map[string]float64, score int, change domain.RatingChange) error {
	set := bson.M{"credibility_rating": score}
	for factor, value := range factors {
		if field, ok := factorFields[factor]; ok {
			set[field] = int(value)
		}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":  set,
		"$push": bson.M{"rating_history": change},
	})
	if err != nil {
		return fmt.Errorf("apply rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCreatorNotFound
	}
	return nil
}

// Stats aggregates the admin dashboard numbers in a single pipeline pass.
func (r *CreatorRepository) Stats(ctx context.Context) (*ports.AdminStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"verified": bson.M{"$sum": bson.M{
				"$cond": bson.A{"$verified", 1, 0},
			}},
			"pending": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", string(domain.CreatorPending)}}, 1, 0},
			}},
			"rejected": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", string(domain.CreatorRejected)}}, 1, 0},
			}},
			"average_rating": bson.M{"$avg": "$credibility_rating"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total         int     `bson:"total"`
		Verified      int     `bson:"verified"`
		Pending       int     `bson:"pending"`
		Rejected      int     `bson:"rejected"`
		AverageRating float64 `bson:"average_rating"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	if len(rows) == 0 {
		return &ports.AdminStats{}, nil
	}

	return &ports.AdminStats{
		TotalCreators: rows[0].Total,
		Verified:      rows[0].Verified,
		Pending:       rows[0].Pending,
		Rejected:      rows[0].Rejected,
		AverageRating: rows[0].AverageRating,
	}, nil
}
