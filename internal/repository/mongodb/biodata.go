package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/pkg/apperrors"
)

// BioDataRepo keeps one biometric record per user via upserts.
type BioDataRepo struct {
	coll *mongo.Collection
}

func NewBioDataRepo(db *DB) *BioDataRepo {
	return &BioDataRepo{coll: db.collection(collBioData)}
}

// Upsert creates or fully replaces the record keyed by user id.
func (r *BioDataRepo) Upsert(ctx context.Context, data *models.BioData) error {
	data.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": data.UserID}, data, opts)
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (r *BioDataRepo) GetByUserID(ctx context.Context, userID string) (*models.BioData, error) {
	var data models.BioData
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("biodata for user %s not found", userID)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &data, nil
}

func (r *BioDataRepo) DeleteByUserID(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("biodata for user %s not found", userID)
	}
	return nil
}
