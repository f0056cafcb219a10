package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment lifecycle states.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Accepted card payment methods.
const (
	PaymentMethodCredit = "credit"
	PaymentMethodDebit  = "debit"
)

// Payment records one card transaction. TransactionID is globally
// unique and doubles as the idempotency key: re-submitting a payment
// with an id already stored is treated as already-applied.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TransactionID  string             `bson:"transaction_id" json:"transactionId"`
	Amount         float64            `bson:"amount" json:"amount" validate:"gt=0"`
	PaymentMethod  string             `bson:"payment_method" json:"paymentMethod" validate:"oneof=credit debit"`
	CardName       string             `bson:"card_name" json:"cardName" validate:"required"`
	CardLast4      string             `bson:"card_last4" json:"cardLast4" validate:"len=4,numeric"`
	BillingAddress string             `bson:"billing_address" json:"billingAddress"`
	Type           string             `bson:"type" json:"type" validate:"oneof=income expense"`
	Status         string             `bson:"status" json:"status" validate:"omitempty,oneof=pending completed failed"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
}
