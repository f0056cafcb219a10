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

// AssetRepo persists gym assets.
type AssetRepo struct {
	coll *mongo.Collection
}

func NewAssetRepo(db *DB) *AssetRepo {
	return &AssetRepo{coll: db.collection(collAssets)}
}

func (r *AssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	asset.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, asset)
	if err != nil {
		return apperrors.Internal(err)
	}
	asset.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AssetRepo) List(ctx context.Context) ([]models.Asset, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	assets := []models.Asset{}
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, apperrors.Internal(err)
	}
	return assets, nil
}

func (r *AssetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var asset models.Asset
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&asset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("asset %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &asset, nil
}

// Update performs a full replace, keeping the original id.
func (r *AssetRepo) Update(ctx context.Context, id string, asset *models.Asset) (*models.Asset, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	asset.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, asset)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NotFoundf("asset %s not found", id)
	}
	return asset, nil
}

func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("asset %s not found", id)
	}
	return nil
}

// TotalValue sums estimated_value across the collection. Documents
// missing the field contribute 0, matching $sum semantics; an empty
// collection yields 0.
func (r *AssetRepo) TotalValue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$estimated_value"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return 0, apperrors.Internal(err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, apperrors.Internal(err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
