package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Training request states. The intended order is pending → approved or
// rejected, then approved → completed; Update only checks membership in
// this set, not the order.
const (
	TrainingStatusPending   = "pending"
	TrainingStatusApproved  = "approved"
	TrainingStatusRejected  = "rejected"
	TrainingStatusCompleted = "completed"
)

// Request urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// CoachIDs is the fixed roster selectable on a training request.
var CoachIDs = []string{
	"coach-01", "coach-02", "coach-03", "coach-04", "coach-05",
	"coach-06", "coach-07", "coach-08", "coach-09", "coach-10",
	"coach-11", "coach-12", "coach-13", "coach-14", "coach-15",
}

// ValidCoachID reports whether the id belongs to the fixed roster.
func ValidCoachID(id string) bool {
	for _, c := range CoachIDs {
		if c == id {
			return true
		}
	}
	return false
}

// ValidTrainingStatus reports whether s is one of the four states.
func ValidTrainingStatus(s string) bool {
	switch s {
	case TrainingStatusPending, TrainingStatusApproved, TrainingStatusRejected, TrainingStatusCompleted:
		return true
	}
	return false
}

// TrainingRequest is a member's booking request routed to HR. DateTime
// must be strictly in the future at creation time; it is not
// re-validated afterwards.
type TrainingRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberName    string             `bson:"member_name" json:"memberName" validate:"required"`
	ContactNumber string             `bson:"contact_number" json:"contactNumber" validate:"required"`
	CoachID       string             `bson:"coach_id" json:"coachId" validate:"required"`
	TrainingTopic string             `bson:"training_topic" json:"trainingTopic" validate:"oneof=weight-loss strength cardio yoga crossfit rehabilitation nutrition"`
	DateTime      time.Time          `bson:"date_time" json:"dateTime"`
	DurationHours int                `bson:"duration_hours" json:"durationHours" validate:"gte=1,lte=8"`
	Urgency       string             `bson:"urgency" json:"urgency" validate:"oneof=low medium high"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
