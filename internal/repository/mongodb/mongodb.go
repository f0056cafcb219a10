package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitcenter-backend/pkg/apperrors"
)

// Collection names, one per entity.
const (
	collAssets    = "assets"
	collCashLog   = "cash_log"
	collPayments  = "payments"
	collPayrolls  = "payrolls"
	collStaff     = "staff_members"
	collSignIns   = "signin_records"
	collCoaches   = "coaches"
	collUsers     = "users"
	collBioData   = "biodata"
	collTraining  = "training_requests"
	collFeedback  = "feedback"
)

// DB wraps the Mongo client and owns collection handles.
type DB struct {
	client *mongo.Client
	name   string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string) (*DB, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{client: client, name: dbName}, nil
}

// EnsureIndexes creates the unique indexes the write paths rely on:
// payment idempotency, one-biodata-per-user, and account email or
// username uniqueness.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	specs := []struct {
		coll string
		keys bson.D
	}{
		{collPayments, bson.D{{Key: "transaction_id", Value: 1}}},
		{collBioData, bson.D{{Key: "user_id", Value: 1}}},
		{collCoaches, bson.D{{Key: "email", Value: 1}}},
		{collUsers, bson.D{{Key: "email", Value: 1}}},
		{collStaff, bson.D{{Key: "username", Value: 1}}},
	}

	for _, s := range specs {
		_, err := d.collection(s.coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    s.keys,
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", s.coll, err)
		}
	}

	return nil
}

// Close closes the MongoDB connection.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) collection(name string) *mongo.Collection {
	return d.client.Database(d.name).Collection(name)
}

// objectID parses a hex id, answering a validation error the handler
// layer maps to 400.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Validationf("invalid id %q", id)
	}
	return oid, nil
}

func isDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
