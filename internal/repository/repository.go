package repository

import (
	"context"
	"time"

	"fitcenter-backend/internal/domain/models"
)

// Store interfaces are implemented by the mongodb package and faked in
// handler tests. Ids cross these boundaries as hex strings; a store
// answers a validation error for a malformed id and a not-found error
// for an absent one.

type AssetStore interface {
	Create(ctx context.Context, asset *models.Asset) error
	List(ctx context.Context) ([]models.Asset, error)
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	Update(ctx context.Context, id string, asset *models.Asset) (*models.Asset, error)
	Delete(ctx context.Context, id string) error
	TotalValue(ctx context.Context) (float64, error)
}

type CashLogStore interface {
	Create(ctx context.Context, entry *models.CashLogEntry) error
	List(ctx context.Context) ([]models.CashLogEntry, error)
}

type PaymentStore interface {
	// Insert persists the payment unless its transaction id is already
	// stored; in that case it returns the stored record with created
	// false (already-applied).
	Insert(ctx context.Context, payment *models.Payment) (created bool, stored *models.Payment, err error)
	List(ctx context.Context) ([]models.Payment, error)
	// ListByType returns payments of the given type, newest first. An
	// empty type returns everything, still newest first.
	ListByType(ctx context.Context, txType string) ([]models.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PayrollStore interface {
	Create(ctx context.Context, payroll *models.Payroll) error
	List(ctx context.Context) ([]models.Payroll, error)
	ListByStatus(ctx context.Context, status string) ([]models.Payroll, error)
	GetByID(ctx context.Context, id string) (*models.Payroll, error)
	Update(ctx context.Context, id string, payroll *models.Payroll) (*models.Payroll, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (*models.Payroll, error)
	SetNotes(ctx context.Context, id, notes string) (*models.Payroll, error)
	// MarkOverdueBefore flips Pending payrolls dated before the cutoff
	// to Overdue and reports how many changed.
	MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type StaffStore interface {
	Create(ctx context.Context, staff *models.StaffMember) error
	List(ctx context.Context) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	FindByUsername(ctx context.Context, username string) (*models.StaffMember, error)
	Update(ctx context.Context, id string, staff *models.StaffMember) (*models.StaffMember, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
}

type SignInStore interface {
	Create(ctx context.Context, record *models.SignInRecord) error
}

type CoachStore interface {
	Create(ctx context.Context, coach *models.Coach) error
	FindByEmail(ctx context.Context, email string) (*models.Coach, error)
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	Update(ctx context.Context, id string, coach *models.Coach) (*models.Coach, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetResetToken(ctx context.Context, id, token string, expiry time.Time) error
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

type BioDataStore interface {
	// Upsert creates or fully replaces the single record for the user.
	Upsert(ctx context.Context, data *models.BioData) error
	GetByUserID(ctx context.Context, userID string) (*models.BioData, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// TrainingFilter narrows a training-request listing. Zero values mean
// no constraint.
type TrainingFilter struct {
	Status  string
	CoachID string
}

type TrainingStore interface {
	Create(ctx context.Context, req *models.TrainingRequest) error
	List(ctx context.Context, filter TrainingFilter) ([]models.TrainingRequest, error)
	GetByID(ctx context.Context, id string) (*models.TrainingRequest, error)
	Update(ctx context.Context, id string, req *models.TrainingRequest) (*models.TrainingRequest, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackFilter narrows a feedback listing. Zero values mean no
// constraint.
type FeedbackFilter struct {
	Type   string
	Status string
}

type FeedbackStore interface {
	Create(ctx context.Context, fb *models.Feedback) error
	List(ctx context.Context, filter FeedbackFilter) ([]models.Feedback, error)
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	Update(ctx context.Context, id string, fb *models.Feedback) (*models.Feedback, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.FeedbackStats, error)
}
