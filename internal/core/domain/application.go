package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a creator application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// validReviewTransitions defines the allowed review state machine.
// Approved and rejected are terminal.
var validReviewTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationUnderReview, ApplicationApproved, ApplicationRejected},
	ApplicationUnderReview: {ApplicationApproved, ApplicationRejected},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrApplicationNotFound = errors.New("application not found")

// CanTransitionTo reports whether moving from s to next is a legal review step.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validReviewTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is a prospective creator's request to join the platform.
type Application struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	CreatorName string            `json:"creator_name" bson:"creator_name"`
	Email       string            `json:"email" bson:"email"`
	Category    string            `json:"category" bson:"category"`
	Followers   int64             `json:"followers" bson:"followers"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	SubmittedAt time.Time         `json:"submitted_at" bson:"submitted_at"`
	ReviewedAt  time.Time         `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	Notes       string            `json:"notes,omitempty" bson:"notes,omitempty"`
}
