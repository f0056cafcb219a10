package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset condition states tracked for gym equipment.
const (
	AssetConditionNew         = "new"
	AssetConditionGood        = "good"
	AssetConditionNeedsRepair = "needs-repair"
	AssetConditionRetired     = "retired"
)

// Asset categories.
const (
	AssetTypeMachine     = "machine"
	AssetTypeFreeWeights = "free-weights"
	AssetTypeElectronics = "electronics"
	AssetTypeFurniture   = "furniture"
	AssetTypeOther       = "other"
)

// Asset is a piece of physical inventory owned by the center.
type Asset struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Type           string             `bson:"type" json:"type" validate:"required,oneof=machine free-weights electronics furniture other"`
	Quantity       int                `bson:"quantity" json:"quantity" validate:"gte=0"`
	PurchaseDate   time.Time          `bson:"purchase_date" json:"purchaseDate"`
	Condition      string             `bson:"condition" json:"condition" validate:"oneof=new good needs-repair retired"`
	EstimatedValue float64            `bson:"estimated_value" json:"estimatedValue" validate:"gte=0"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
