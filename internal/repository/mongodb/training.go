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
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// TrainingRepo persists training-session requests.
type TrainingRepo struct {
	coll *mongo.Collection
}

func NewTrainingRepo(db *DB) *TrainingRepo {
	return &TrainingRepo{coll: db.collection(collTraining)}
}

func (r *TrainingRepo) Create(ctx context.Context, req *models.TrainingRequest) error {
	req.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return apperrors.Internal(err)
	}
	req.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *TrainingRepo) List(ctx context.Context, filter repository.TrainingFilter) ([]models.TrainingRequest, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CoachID != "" {
		query["coach_id"] = filter.CoachID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	requests := []models.TrainingRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, apperrors.Internal(err)
	}
	return requests, nil
}

func (r *TrainingRepo) GetByID(ctx context.Context, id string) (*models.TrainingRequest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var req models.TrainingRequest
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("training request %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &req, nil
}

func (r *TrainingRepo) Update(ctx context.Context, id string, req *models.TrainingRequest) (*models.TrainingRequest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	req.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, req)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NotFoundf("training request %s not found", id)
	}
	return req, nil
}

func (r *TrainingRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("training request %s not found", id)
	}
	return nil
}
