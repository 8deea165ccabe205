package domain

import (
	"errors"
	"time"
)

// CreatorStatus is the moderation state of a creator profile.
type CreatorStatus string

const (
	CreatorApproved CreatorStatus = "approved"
	CreatorPending  CreatorStatus = "pending"
	CreatorRejected CreatorStatus = "rejected"
)

var ErrCreatorNotFound = errors.New("creator not found")

// CompareLimit caps how many creators a single comparison may include.
const CompareLimit = 3

var ErrCompareLimit = errors.New("too many creators to compare")

// Platforms holds per-network handles. Empty string means not present there.
type Platforms struct {
	YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty" bson:"tiktok,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

// RatingChange records one historical credibility adjustment.
type RatingChange struct {
	Date   time.Time `json:"date" bson:"date"`
	Rating int       `json:"rating" bson:"rating"`
	Change int       `json:"change" bson:"change"`
}

// Creator is the influencer profile aggregate.
type Creator struct {
	ID                string         `json:"id" bson:"_id,omitempty"`
	Name              string         `json:"name" bson:"name"`
	Avatar            string         `json:"avatar" bson:"avatar"`
	Bio               string         `json:"bio" bson:"bio"`
	Category          string         `json:"category" bson:"category"`
	Niche             []string       `json:"niche" bson:"niche"`
	Platforms         Platforms      `json:"platforms" bson:"platforms"`
	CredibilityRating int            `json:"credibility_rating" bson:"credibility_rating"`
	EngagementRate    float64        `json:"engagement_rate" bson:"engagement_rate"`
	ContentQuality    int            `json:"content_quality" bson:"content_quality"`
	EngagementQuality int            `json:"engagement_quality" bson:"engagement_quality"`
	GrowthStability   int            `json:"growth_stability" bson:"growth_stability"`
	Authenticity      int            `json:"authenticity" bson:"authenticity"`
	Followers         int64          `json:"followers" bson:"followers"`
	Verified          bool           `json:"verified" bson:"verified"`
	Status            CreatorStatus  `json:"status" bson:"status"`
	TrustTags         []string       `json:"trust_tags" bson:"trust_tags"`
	JoinedAt          time.Time      `json:"joined_at" bson:"joined_at"`
	RatingHistory     []RatingChange `json:"rating_history" bson:"rating_history"`
}

// HasPlatform reports whether the creator is active on the named network.
func (c *Creator) HasPlatform(name string) bool {
	switch name {
	case "youtube":
		return c.Platforms.YouTube != ""
	case "instagram":
		return c.Platforms.Instagram != ""
	case "tiktok":
		return c.Platforms.TikTok != ""
	case "twitter":
		return c.Platforms.Twitter != ""
	case "linkedin":
		return c.Platforms.LinkedIn != ""
	}
	return false
}
