package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff roles.
const (
	StaffRoleFinancialManager = "financial-manager"
	StaffRoleHR               = "hr"
	StaffRoleReceptionist     = "receptionist"
	StaffRoleMaintenance      = "maintenance"
)

// StaffMember is an employee account managed through the registration
// endpoints. PasswordHash is a bcrypt digest and never serialized.
type StaffMember struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Username     string             `bson:"username" json:"username" validate:"required"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Phone        string             `bson:"phone" json:"phone"`
	Role         string             `bson:"role" json:"role" validate:"oneof=financial-manager hr receptionist maintenance"`
	JoinDate     time.Time          `bson:"join_date" json:"joinDate"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// SignInRecord is the session document the legacy staff module writes
// on every login attempt.
type SignInRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username" validate:"required"`
	SignedIn  time.Time          `bson:"signed_in" json:"signedIn"`
	Succeeded bool               `bson:"succeeded" json:"succeeded"`
}
