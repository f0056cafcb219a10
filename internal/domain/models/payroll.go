package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conventional payroll payment states. The field is free text on the
// wire; these are the values the liability view and the overdue sweep
// care about. Matching is case-sensitive and exact.
const (
	PayrollStatusPending = "Pending"
	PayrollStatusPaid    = "Paid"
	PayrollStatusOverdue = "Overdue"
)

// Payroll is one salary obligation toward an employee. An Overdue
// payroll is what the liability endpoints surface; there is no separate
// liability collection.
type Payroll struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Employee      string             `bson:"employee" json:"employee" validate:"required"`
	Salary        float64            `bson:"salary" json:"salary" validate:"gte=0"`
	Bonus         float64            `bson:"bonus" json:"bonus" validate:"gte=0"`
	Date          time.Time          `bson:"date" json:"date"`
	PaymentStatus string             `bson:"payment_status" json:"paymentStatus" validate:"required"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// Liability is the projection of an overdue payroll served by the
// liability endpoints. It is computed, never stored.
type Liability struct {
	ID       primitive.ObjectID `json:"id"`
	Employee string             `json:"employee"`
	Amount   float64            `json:"amount"`
	DueDate  time.Time          `json:"dueDate"`
	Status   string             `json:"status"`
	Notes    string             `json:"notes,omitempty"`
}

// AsLiability projects the payroll into the liability view. Amount is
// salary plus bonus, the full outstanding obligation.
func (p Payroll) AsLiability() Liability {
	return Liability{
		ID:       p.ID,
		Employee: p.Employee,
		Amount:   p.Salary + p.Bonus,
		DueDate:  p.Date,
		Status:   p.PaymentStatus,
		Notes:    p.Notes,
	}
}
