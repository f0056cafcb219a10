package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback review states.
const (
	FeedbackStatusNew      = "new"
	FeedbackStatusReviewed = "reviewed"
	FeedbackStatusResolved = "resolved"
)

// Feedback is a member-submitted rating with free-text context.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Type      string             `bson:"type" json:"type" validate:"oneof=complaint suggestion praise general"`
	Rating    int                `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	Message   string             `bson:"message" json:"message"`
	Date      time.Time          `bson:"date" json:"date"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// FeedbackStats is the aggregation served by the stats endpoint.
type FeedbackStats struct {
	Total         int64           `json:"total"`
	AverageRating float64         `json:"averageRating"`
	ByRating      map[string]int64 `json:"byRating"`
}
