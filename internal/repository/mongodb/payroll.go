package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/pkg/apperrors"
)

// PayrollRepo persists salary obligations. The liability view and the
// overdue sweep both operate on this collection; there is no separate
// liability store.
type PayrollRepo struct {
	coll *mongo.Collection
}

func NewPayrollRepo(db *DB) *PayrollRepo {
	return &PayrollRepo{coll: db.collection(collPayrolls)}
}

func (r *PayrollRepo) Create(ctx context.Context, payroll *models.Payroll) error {
	payroll.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, payroll)
	if err != nil {
		return apperrors.Internal(err)
	}
	payroll.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PayrollRepo) List(ctx context.Context) ([]models.Payroll, error) {
	return r.find(ctx, bson.M{})
}

// ListByStatus matches payment_status exactly, case-sensitive.
func (r *PayrollRepo) ListByStatus(ctx context.Context, status string) ([]models.Payroll, error) {
	return r.find(ctx, bson.M{"payment_status": status})
}

func (r *PayrollRepo) find(ctx context.Context, filter bson.M) ([]models.Payroll, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	payrolls := []models.Payroll{}
	if err := cursor.All(ctx, &payrolls); err != nil {
		return nil, apperrors.Internal(err)
	}
	return payrolls, nil
}

func (r *PayrollRepo) GetByID(ctx context.Context, id string) (*models.Payroll, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var payroll models.Payroll
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&payroll)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("payroll %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &payroll, nil
}

func (r *PayrollRepo) Update(ctx context.Context, id string, payroll *models.Payroll) (*models.Payroll, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	payroll.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, payroll)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NotFoundf("payroll %s not found", id)
	}
	return payroll, nil
}

func (r *PayrollRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("payroll %s not found", id)
	}
	return nil
}

func (r *PayrollRepo) SetStatus(ctx context.Context, id, status string) (*models.Payroll, error) {
	return r.setField(ctx, id, "payment_status", status)
}

func (r *PayrollRepo) SetNotes(ctx context.Context, id, notes string) (*models.Payroll, error) {
	return r.setField(ctx, id, "notes", notes)
}

func (r *PayrollRepo) setField(ctx context.Context, id, field string, value interface{}) (*models.Payroll, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var payroll models.Payroll
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}}, opts).Decode(&payroll)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("payroll %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &payroll, nil
}

// MarkOverdueBefore flips Pending payrolls dated before the cutoff to
// Overdue.
func (r *PayrollRepo) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"payment_status": models.PayrollStatusPending,
		"date":           bson.M{"$lt": cutoff},
	}

	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"payment_status": models.PayrollStatusOverdue}})
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return res.ModifiedCount, nil
}
