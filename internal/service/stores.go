package service

import (
	"context"

	"reel-backend/internal/models"
)

// Lookups return (record, nil) when found, (nil, nil) when the record does
// not exist and (nil, err) when the store itself failed. Callers must not
// treat a failure as a miss.

type ProfileStore interface {
	FindByIdentityID(ctx context.Context, identityID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	UpdateBio(ctx context.Context, identityID, bio string) (*models.Profile, error)
	SetFirstMessageSent(ctx context.Context, identityID string) (*models.Profile, error)
}

type LegacyUserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.LegacyUser, error)
}

type IdentityStore interface {
	FindByID(ctx context.Context, id string) (*models.Identity, error)
}
