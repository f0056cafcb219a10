package mongodb

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// FeedbackRepo persists member feedback and serves its aggregations.
type FeedbackRepo struct {
	coll *mongo.Collection
}

func NewFeedbackRepo(db *DB) *FeedbackRepo {
	return &FeedbackRepo{coll: db.collection(collFeedback)}
}

func (r *FeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	fb.CreatedAt = time.Now()
	if fb.Date.IsZero() {
		fb.Date = fb.CreatedAt
	}
	if fb.Status == "" {
		fb.Status = models.FeedbackStatusNew
	}

	res, err := r.coll.InsertOne(ctx, fb)
	if err != nil {
		return apperrors.Internal(err)
	}
	fb.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *FeedbackRepo) List(ctx context.Context, filter repository.FeedbackFilter) ([]models.Feedback, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	items := []models.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperrors.Internal(err)
	}
	return items, nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var fb models.Feedback
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&fb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("feedback %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &fb, nil
}

func (r *FeedbackRepo) Update(ctx context.Context, id string, fb *models.Feedback) (*models.Feedback, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	fb.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fb)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NotFoundf("feedback %s not found", id)
	}
	return fb, nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("feedback %s not found", id)
	}
	return nil
}

// Stats groups feedback by rating; total and average derive from the
// per-rating counts.
func (r *FeedbackRepo) Stats(ctx context.Context) (*models.FeedbackStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$rating"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	var rows []struct {
		Rating int   `bson:"_id"`
		Count  int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, apperrors.Internal(err)
	}

	stats := &models.FeedbackStats{ByRating: map[string]int64{}}
	var weighted int64
	for _, row := range rows {
		stats.Total += row.Count
		weighted += int64(row.Rating) * row.Count
		stats.ByRating[strconv.Itoa(row.Rating)] = row.Count
	}
	if stats.Total > 0 {
		stats.AverageRating = float64(weighted) / float64(stats.Total)
	}
	return stats, nil
}
