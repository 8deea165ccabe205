package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credora/creator-platform/internal/core/domain"
)

const applicationCollection = "applications"

// ApplicationRepository persists creator applications in MongoDB.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationCollection)}
}

type mongoApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CreatorName string             `bson:"creator_name"`
	Email       string             `bson:"email"`
	Category    string             `bson:"category"`
	Followers   int64              `bson:"followers"`
	Status      string             `bson:"status"`
	SubmittedAt int64              `bson:"submitted_at"`
	ReviewedAt  int64              `bson:"reviewed_at,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
}

func (m mongoApplication) toDomain() domain.Application {
	return domain.Application{
		ID:          m.ID.Hex(),
		CreatorName: m.CreatorName,
		Email:       m.Email,
		Category:    m.Category,
		Followers:   m.Followers,
		Status:      domain.ApplicationStatus(m.Status),
		SubmittedAt: unixToTime(m.SubmittedAt),
		ReviewedAt:  unixToTime(m.ReviewedAt),
		Notes:       m.Notes,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	doc := mongoApplication{
		CreatorName: app.CreatorName,
		Email:       app.Email,
		Category:    app.Category,
		Followers:   app.Followers,
		Status:      string(app.Status),
		SubmittedAt: app.SubmittedAt.Unix(),
		Notes:       app.Notes,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	app := ma.toDomain()
	return &app, nil
}

func (r *ApplicationRepository) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = string(status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoApplication
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}

	apps := make([]domain.Application, 0, len(docs))
	for _, d := range docs {
		apps = append(apps, d.toDomain())
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, app *domain.Application) error {
	oid, err := primitive.ObjectIDFromHex(app.ID)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":      string(app.Status),
		"reviewed_at": app.ReviewedAt.Unix(),
		"notes":       app.Notes,
	}})
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}
