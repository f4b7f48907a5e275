package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"reel-backend/internal/common"
	"reel-backend/internal/models"
	"reel-backend/internal/notify"
	"reel-backend/internal/onboarding"
	"reel-backend/internal/repository"

	"go.uber.org/zap"
)

// ProfileService owns the profile lifecycle: reconciliation on sign-in,
// bio edits and the onboarding marker.
type ProfileService struct {
	profiles   ProfileStore
	legacy     LegacyUserStore
	identities IdentityStore
	notifier   notify.Notifier
	logger     *zap.Logger
}

func NewProfileService(
	profiles ProfileStore,
	legacy LegacyUserStore,
	identities IdentityStore,
	notifier notify.Notifier,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profiles:   profiles,
		legacy:     legacy,
		identities: identities,
		notifier:   notifier,
		logger:     logger,
	}
}

type ReconcileResult struct {
	Profile *models.Profile
	// Created is false when an existing profile was returned.
	Created bool
}

// ResolveIdentity loads the identity behind a session subject.
func (s *ProfileService) ResolveIdentity(ctx context.Context, id string) (*models.Identity, error) {
	if id == "" {
		return nil, common.ErrUnauthorized
	}
	identity, err := s.identities.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("find identity", err)
	}
	if identity == nil {
		return nil, common.ErrUnauthorized
	}
	return identity, nil
}

// Reconcile returns the identity's profile, creating it on first call.
//
// A new profile's bio is seeded, in order of preference, from a legacy user
// with the same email, then from recoveryBio (the bio the browser still
// holds). Without either the profile starts empty and is flagged as a new
// user. Repeated calls return the stored profile and write nothing.
func (s *ProfileService) Reconcile(ctx context.Context, identity *models.Identity, recoveryBio string) (*ReconcileResult, error) {
	if identity == nil || identity.ID == "" {
		return nil, common.ErrUnauthorized
	}
	identityID := identity.ID

	existing, err := s.profiles.FindByIdentityID(ctx, identityID)
	if err != nil {
		return nil, storageErr("find profile", err)
	}
	if existing != nil {
		return &ReconcileResult{Profile: existing}, nil
	}

	profile := &models.Profile{
		IdentityID: identityID,
		Name:       identity.Name(),
		Email:      identity.Email,
		NewUser:    true,
	}

	legacy, err := s.legacy.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, storageErr("find legacy user", err)
	}
	switch {
	case legacy != nil:
		profile.Bio = legacy.Bio
		profile.NewUser = false
	case recoveryBio != "":
		if err := validateBio(recoveryBio); err != nil {
			return nil, err
		}
		profile.Bio = recoveryBio
		profile.NewUser = false
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			// A concurrent reconcile won the insert; return its record.
			winner, ferr := s.profiles.FindByIdentityID(ctx, identityID)
			if ferr == nil && winner != nil {
				return &ReconcileResult{Profile: winner}, nil
			}
		}
		return nil, storageErr("create profile", err)
	}

	s.logger.Info("profile created",
		zap.String("identity_id", identityID),
		zap.Bool("new_user", profile.NewUser),
		zap.Bool("migrated", legacy != nil),
	)
	return &ReconcileResult{Profile: profile, Created: true}, nil
}

// Snapshot returns the session snapshot for a stored profile.
func (s *ProfileService) Snapshot(ctx context.Context, identityID string) (onboarding.Snapshot, error) {
	profile, err := s.profiles.FindByIdentityID(ctx, identityID)
	if err != nil {
		return onboarding.Snapshot{}, storageErr("find profile", err)
	}
	if profile == nil {
		return onboarding.Snapshot{}, common.ErrNotFound
	}
	return onboarding.NewSnapshot(profile), nil
}

// SaveBio stores a new biography and returns the resulting snapshot. On
// failure the stored profile is left as it was.
func (s *ProfileService) SaveBio(ctx context.Context, identityID, bio string) (onboarding.Snapshot, error) {
	if err := validateBio(bio); err != nil {
		return onboarding.Snapshot{}, err
	}

	profile, err := s.profiles.UpdateBio(ctx, identityID, bio)
	if err != nil {
		return onboarding.Snapshot{}, storageErr("update bio", err)
	}
	if profile == nil {
		return onboarding.Snapshot{}, common.ErrNotFound
	}

	if err := s.notifier.ProfileUpdated(ctx, notify.ProfileUpdated{IdentityID: identityID, Bio: profile.Bio}); err != nil {
		s.logger.Warn("extension notification failed", zap.String("identity_id", identityID), zap.Error(err))
	}
	return onboarding.NewSnapshot(profile), nil
}

// MarkFirstMessageSent records that the user sent their first outreach
// message. Marking twice is a no-op.
func (s *ProfileService) MarkFirstMessageSent(ctx context.Context, identityID string) (onboarding.Snapshot, error) {
	current, err := s.Snapshot(ctx, identityID)
	if err != nil {
		return onboarding.Snapshot{}, err
	}
	if current.FirstMessageSent {
		return current, nil
	}

	profile, err := s.profiles.SetFirstMessageSent(ctx, identityID)
	if err != nil {
		return onboarding.Snapshot{}, storageErr("set first message sent", err)
	}
	if profile == nil {
		return onboarding.Snapshot{}, common.ErrNotFound
	}
	return current.WithProfile(profile).WithFirstMessageSent(), nil
}

func validateBio(bio string) error {
	if utf8.RuneCountInString(bio) > models.BioMaxLen {
		return fmt.Errorf("%w: bio must be at most %d characters", common.ErrInvalidInput, models.BioMaxLen)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrStorage, op, err)
}
