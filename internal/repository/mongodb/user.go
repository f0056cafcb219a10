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

// UserRepo persists member accounts and their reset tokens.
type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{coll: db.collection(collUsers)}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = "member"
	}

	res, err := r.coll.InsertOne(ctx, user)
	if isDuplicate(err) {
		return apperrors.Conflictf("email %s already registered", user.Email)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, email)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid}, id)
}

func (r *UserRepo) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"reset_token": token}, "by reset token")
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M, ref string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("user %s not found", ref)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

func (r *UserRepo) SetResetToken(ctx context.Context, id, token string, expiry time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"reset_token": token, "reset_token_expiry": expiry}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("user %s not found", id)
	}
	return nil
}

// UpdatePasswordHash replaces the stored hash and clears any pending
// reset token.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set":   bson.M{"password_hash": hash},
		"$unset": bson.M{"reset_token": "", "reset_token_expiry": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("user %s not found", id)
	}
	return nil
}
