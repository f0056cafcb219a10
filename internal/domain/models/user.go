package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a general member account. Reset token fields are populated by
// the forgot-password flow and cleared once the token is consumed.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	Email            string             `bson:"email" json:"email" validate:"required,email"`
	PasswordHash     string             `bson:"password_hash" json:"-"`
	Phone            string             `bson:"phone" json:"phone"`
	Role             string             `bson:"role" json:"role"`
	ResetToken       string             `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry time.Time          `bson:"reset_token_expiry,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
}
