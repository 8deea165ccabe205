package domain

import (
	"errors"
	"time"
)

// CampaignType distinguishes the promotion formats creators can announce.
type CampaignType string

const (
	CampaignLiveEvent CampaignType = "live_event"
	CampaignCampaign  CampaignType = "campaign"
	CampaignWorkshop  CampaignType = "workshop"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// Campaign is a creator-announced promotion open to brand sponsorship.
type Campaign struct {
	ID                   string       `json:"id" bson:"_id,omitempty"`
	Title                string       `json:"title" bson:"title"`
	CreatorName          string       `json:"creator_name" bson:"creator_name"`
	Type                 CampaignType `json:"type" bson:"type"`
	StartsAt             time.Time    `json:"starts_at" bson:"starts_at"`
	Location             string       `json:"location" bson:"location"`
	Description          string       `json:"description" bson:"description"`
	Attendees            int          `json:"attendees" bson:"attendees"`
	SponsorshipAvailable bool         `json:"sponsorship_available" bson:"sponsorship_available"`
	CreatedAt            time.Time    `json:"created_at" bson:"created_at"`
}
