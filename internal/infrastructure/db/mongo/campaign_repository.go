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

const campaignCollection = "campaigns"

// CampaignRepository persists creator promotions in MongoDB.
type CampaignRepository struct {
	coll *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{coll: db.Collection(campaignCollection)}
}

type mongoCampaign struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Title                string             `bson:"title"`
	CreatorName          string             `bson:"creator_name"`
	Type                 string             `bson:"type"`
	StartsAt             int64              `bson:"starts_at"`
	Location             string             `bson:"location"`
	Description          string             `bson:"description"`
	Attendees            int                `bson:"attendees"`
	SponsorshipAvailable bool               `bson:"sponsorship_available"`
	CreatedAt            int64              `bson:"created_at"`
}

func (m mongoCampaign) toDomain() domain.Campaign {
	return domain.Campaign{
		ID:                   m.ID.Hex(),
		Title:                m.Title,
		CreatorName:          m.CreatorName,
		Type:                 domain.CampaignType(m.Type),
		StartsAt:             unixToTime(m.StartsAt),
		Location:             m.Location,
		Description:          m.Description,
		Attendees:            m.Attendees,
		SponsorshipAvailable: m.SponsorshipAvailable,
		CreatedAt:            unixToTime(m.CreatedAt),
	}
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoCampaign
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(docs))
	for _, d := range docs {
		campaigns = append(campaigns, d.toDomain())
	}
	return campaigns, nil
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	doc := mongoCampaign{
		Title:                c.Title,
		CreatorName:          c.CreatorName,
		Type:                 string(c.Type),
		StartsAt:             c.StartsAt.Unix(),
		Location:             c.Location,
		Description:          c.Description,
		Attendees:            c.Attendees,
		SponsorshipAvailable: c.SponsorshipAvailable,
		CreatedAt:            c.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
