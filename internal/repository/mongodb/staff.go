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

// StaffRepo persists staff member accounts.
type StaffRepo struct {
	coll *mongo.Collection
}

func NewStaffRepo(db *DB) *StaffRepo {
	return &StaffRepo{coll: db.collection(collStaff)}
}

func (r *StaffRepo) Create(ctx context.Context, staff *models.StaffMember) error {
	staff.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, staff)
	if isDuplicate(err) {
		return apperrors.Conflictf("username %s already registered", staff.Username)
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	staff.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *StaffRepo) List(ctx context.Context) ([]models.StaffMember, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	members := []models.StaffMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, apperrors.Internal(err)
	}
	return members, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid}, id)
}

func (r *StaffRepo) FindByUsername(ctx context.Context, username string) (*models.StaffMember, error) {
	return r.findOne(ctx, bson.M{"username": username}, username)
}

func (r *StaffRepo) findOne(ctx context.Context, filter bson.M, ref string) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := r.coll.FindOne(ctx, filter).Decode(&staff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("staff member %s not found", ref)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &staff, nil
}

func (r *StaffRepo) Update(ctx context.Context, id string, staff *models.StaffMember) (*models.StaffMember, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	staff.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, staff)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NotFoundf("staff member %s not found", id)
	}
	return staff, nil
}

func (r *StaffRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password_hash": hash}})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("staff member %s not found", id)
	}
	return nil
}

func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("staff member %s not found", id)
	}
	return nil
}

// SignInRepo appends login-session documents for the legacy staff
// signin module.
type SignInRepo struct {
	coll *mongo.Collection
}

func NewSignInRepo(db *DB) *SignInRepo {
	return &SignInRepo{coll: db.collection(collSignIns)}
}

func (r *SignInRepo) Create(ctx context.Context, record *models.SignInRecord) error {
	if record.SignedIn.IsZero() {
		record.SignedIn = time.Now()
	}

	res, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return apperrors.Internal(err)
	}
	record.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
