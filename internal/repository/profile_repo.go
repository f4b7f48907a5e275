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

// ErrDuplicateProfile is returned by Create when the identity already owns
// a profile.
var ErrDuplicateProfile = errors.New("profile already exists for identity")

type ProfileRepo struct {
	collection *mongo.Collection
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{
		collection: database.GetCollection(database.ProfilesCollection),
	}
}

func (r *ProfileRepo) FindByIdentityID(ctx context.Context, identityID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"identity_id": identityID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateProfile
		}
		return err
	}
	profile.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// UpdateBio sets the biography and returns the updated record, or nil if
// the identity has no profile.
func (r *ProfileRepo) UpdateBio(ctx context.Context, identityID, bio string) (*models.Profile, error) {
	return r.updateOne(ctx, identityID, bson.M{"bio": bio})
}

func (r *ProfileRepo) SetFirstMessageSent(ctx context.Context, identityID string) (*models.Profile, error) {
	return r.updateOne(ctx, identityID, bson.M{"first_message_sent": true})
}

func (r *ProfileRepo) updateOne(ctx context.Context, identityID string, set bson.M) (*models.Profile, error) {
	set["updated_at"] = time.Now()

	var profile models.Profile
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"identity_id": identityID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// EnsureIndexes creates necessary indexes for the profiles collection.
// The unique identity_id index is what guarantees one profile per identity.
func (r *ProfileRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "identity_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
