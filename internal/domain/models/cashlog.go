package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cash transaction directions.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// CashLogEntry is one line of the manual cash book. Entries are
// append-only: the API exposes no update or delete route for them.
type CashLogEntry struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date            time.Time          `bson:"date" json:"date"`
	Amount          float64            `bson:"amount" json:"amount" validate:"gt=0"`
	TransactionType string             `bson:"transaction_type" json:"transactionType" validate:"oneof=income expense"`
	Category        string             `bson:"category" json:"category" validate:"required"`
	Description     string             `bson:"description" json:"description"`
	RecordedBy      string             `bson:"recorded_by" json:"recordedBy" validate:"required"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}
