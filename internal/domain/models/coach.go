package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coach is a trainer account with its own signup/signin flow, separate
// from member accounts.
type Coach struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	PasswordHash   string             `bson:"password_hash" json:"-"`
	Phone          string             `bson:"phone" json:"phone"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Experience     int                `bson:"experience" json:"experience" validate:"gte=0"`
	JoinDate       time.Time          `bson:"join_date" json:"joinDate"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
