package repository

import (
	"context"
	"errors"
	"time"

	"reel-backend/internal/database"
	"reel-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type IdentityRepo struct {
	collection *mongo.Collection
}

func NewIdentityRepo() *IdentityRepo {
	return &IdentityRepo{
		collection: database.GetCollection(database.IdentitiesCollection),
	}
}

func (r *IdentityRepo) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	var identity models.Identity
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}

func (r *IdentityRepo) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	var identity models.Identity
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}

func (r *IdentityRepo) Create(ctx context.Context, identity *models.Identity) error {
	if identity.ID == "" {
		identity.ID = bson.NewObjectID().Hex()
	}
	identity.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, identity)
	return err
}

// FindOrCreate returns the identity registered for email, creating it with
// the given names on first sign-in.
func (r *IdentityRepo) FindOrCreate(ctx context.Context, email, firstName, lastName string) (*models.Identity, error) {
	identity, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if identity != nil {
		return identity, nil
	}

	newIdentity := &models.Identity{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := r.Create(ctx, newIdentity); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return newIdentity, nil
}

// EnsureIndexes creates necessary indexes for the identities collection
func (r *IdentityRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
