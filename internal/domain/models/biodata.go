package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BioData holds one member's biometric profile. The collection keeps at
// most one document per user id; writes go through an upsert.
type BioData struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId" validate:"required"`
	Age        int                `bson:"age" json:"age" validate:"gte=0,lte=130"`
	Gender     string             `bson:"gender" json:"gender"`
	HeightCM   float64            `bson:"height_cm" json:"height" validate:"gte=0"`
	WeightKG   float64            `bson:"weight_kg" json:"weight" validate:"gte=0"`
	BloodType  string             `bson:"blood_type" json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies  []string           `bson:"allergies" json:"allergies"`
	Conditions []string           `bson:"conditions" json:"conditions"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
