package repository

import (
	"context"
	"errors"

	"reel-backend/internal/database"
	"reel-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// LegacyUserRepo reads the pre-profile "users" collection. It never writes.
type LegacyUserRepo struct {
	collection *mongo.Collection
}

func NewLegacyUserRepo() *LegacyUserRepo {
	return &LegacyUserRepo{
		collection: database.GetCollection(database.UsersCollection),
	}
}

func (r *LegacyUserRepo) FindByEmail(ctx context.Context, email string) (*models.LegacyUser, error) {
	var user models.LegacyUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
