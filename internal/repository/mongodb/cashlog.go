package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/pkg/apperrors"
)

// CashLogRepo persists cash book entries. Append-only: no update or
// delete methods exist, mirroring the API contract.
type CashLogRepo struct {
	coll *mongo.Collection
}

func NewCashLogRepo(db *DB) *CashLogRepo {
	return &CashLogRepo{coll: db.collection(collCashLog)}
}

func (r *CashLogRepo) Create(ctx context.Context, entry *models.CashLogEntry) error {
	entry.CreatedAt = time.Now()
	if entry.Date.IsZero() {
		entry.Date = entry.CreatedAt
	}

	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return apperrors.Internal(err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CashLogRepo) List(ctx context.Context) ([]models.CashLogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	entries := []models.CashLogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperrors.Internal(err)
	}
	return entries, nil
}
