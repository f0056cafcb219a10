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

// PaymentRepo persists card transactions. A unique index on
// transaction_id backs the idempotency contract.
type PaymentRepo struct {
	coll *mongo.Collection
}

func NewPaymentRepo(db *DB) *PaymentRepo {
	return &PaymentRepo{coll: db.collection(collPayments)}
}

// Insert stores the payment unless its transaction id already exists.
// A duplicate is not an error: the stored record comes back with
// created false so the caller can answer already-applied.
func (r *PaymentRepo) Insert(ctx context.Context, payment *models.Payment) (bool, *models.Payment, error) {
	if payment.Timestamp.IsZero() {
		payment.Timestamp = time.Now()
	}

	if existing, err := r.findByTransactionID(ctx, payment.TransactionID); err == nil {
		return false, existing, nil
	} else if apperrors.KindOf(err) != apperrors.KindNotFound {
		return false, nil, err
	}

	res, err := r.coll.InsertOne(ctx, payment)
	if isDuplicate(err) {
		// Lost a race with a concurrent identical insert.
		existing, ferr := r.findByTransactionID(ctx, payment.TransactionID)
		if ferr != nil {
			return false, nil, ferr
		}
		return false, existing, nil
	}
	if err != nil {
		return false, nil, apperrors.Internal(err)
	}

	payment.ID = res.InsertedID.(primitive.ObjectID)
	return true, payment, nil
}

func (r *PaymentRepo) findByTransactionID(ctx context.Context, txID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"transaction_id": txID}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("transaction %s not found", txID)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &payment, nil
}

func (r *PaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	return r.ListByType(ctx, "")
}

// ListByType returns payments newest first, optionally restricted to
// one transaction type.
func (r *PaymentRepo) ListByType(ctx context.Context, txType string) ([]models.Payment, error) {
	filter := bson.M{}
	if txType != "" {
		filter["type"] = txType
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, apperrors.Internal(err)
	}
	return payments, nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("payment %s not found", id)
	}
	return nil
}
