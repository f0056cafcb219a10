package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/pkg/apperrors"
)

// CoachRepo persists coach accounts.
type CoachRepo struct {
	coll *mongo.Collection
}

func NewCoachRepo(db *DB) *CoachRepo {
	return &CoachRepo{coll: db.collection(collCoaches)}
}

func (r *CoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	coach.CreatedAt = time.Now()
	if coach.JoinDate.IsZero() {
		coach.JoinDate = coach.CreatedAt
	}

	res, err := r.coll.InsertOne(ctx, coach)
	if isDuplicate(err) {
		return apperrors.Conflictf("email %s already registered", coach.Email)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	coach.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CoachRepo) FindByEmail(ctx context.Context, email string) (*models.Coach, error) {
	var coach models.Coach
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&coach)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("coach %s not found", email)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &coach, nil
}

func (r *CoachRepo) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var coach models.Coach
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&coach)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("coach %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &coach, nil
}

func (r *CoachRepo) Update(ctx context.Context, id string, coach *models.Coach) (*models.Coach, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	coach.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, coach)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NotFoundf("coach %s not found", id)
	}
	return coach, nil
}
