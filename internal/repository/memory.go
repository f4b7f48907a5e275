package repository

import (
	"context"
	"sync"
	"time"

	"reel-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryProfileRepo is an in-memory profile store for tests and local
// runs. Setting Err makes every call fail with it.
type MemoryProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
	Err      error
	Writes   int
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *MemoryProfileRepo) FindByIdentityID(_ context.Context, identityID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.profiles[identityID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.profiles[profile.IdentityID]; ok {
		return ErrDuplicateProfile
	}
	now := time.Now()
	profile.ID = bson.NewObjectID()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	cp := *profile
	r.profiles[profile.IdentityID] = &cp
	r.Writes++
	return nil
}

func (r *MemoryProfileRepo) UpdateBio(_ context.Context, identityID, bio string) (*models.Profile, error) {
	return r.update(identityID, func(p *models.Profile) { p.Bio = bio })
}

func (r *MemoryProfileRepo) SetFirstMessageSent(_ context.Context, identityID string) (*models.Profile, error) {
	return r.update(identityID, func(p *models.Profile) { p.FirstMessageSent = true })
}

func (r *MemoryProfileRepo) update(identityID string, apply func(*models.Profile)) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.profiles[identityID]
	if !ok {
		return nil, nil
	}
	apply(p)
	p.UpdatedAt = time.Now()
	r.Writes++
	cp := *p
	return &cp, nil
}

// Put stores p as is, without counting a write.
func (r *MemoryProfileRepo) Put(p *models.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.IdentityID] = &cp
}

type MemoryLegacyUserRepo struct {
	Users map[string]*models.LegacyUser
	Err   error
}

func NewMemoryLegacyUserRepo(users ...*models.LegacyUser) *MemoryLegacyUserRepo {
	r := &MemoryLegacyUserRepo{Users: make(map[string]*models.LegacyUser)}
	for _, u := range users {
		r.Users[u.Email] = u
	}
	return r
}

func (r *MemoryLegacyUserRepo) FindByEmail(_ context.Context, email string) (*models.LegacyUser, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Users[email], nil
}

type MemoryIdentityRepo struct {
	Identities map[string]*models.Identity
	Err        error
}

func NewMemoryIdentityRepo(identities ...*models.Identity) *MemoryIdentityRepo {
	r := &MemoryIdentityRepo{Identities: make(map[string]*models.Identity)}
	for _, i := range identities {
		r.Identities[i.ID] = i
	}
	return r
}

func (r *MemoryIdentityRepo) FindByID(_ context.Context, id string) (*models.Identity, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Identities[id], nil
}

func (r *MemoryIdentityRepo) FindOrCreate(_ context.Context, email, firstName, lastName string) (*models.Identity, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, i := range r.Identities {
		if i.Email == email {
			return i, nil
		}
	}
	i := &models.Identity{
		ID:        bson.NewObjectID().Hex(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now(),
	}
	r.Identities[i.ID] = i
	return i, nil
}

type MemoryAuthTokenRepo struct {
	mu     sync.Mutex
	Tokens map[string]*models.AuthToken
	Err    error
}

func NewMemoryAuthTokenRepo() *MemoryAuthTokenRepo {
	return &MemoryAuthTokenRepo{Tokens: make(map[string]*models.AuthToken)}
}

func (r *MemoryAuthTokenRepo) Create(_ context.Context, token *models.AuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	token.ID = bson.NewObjectID()
	token.CreatedAt = time.Now()
	cp := *token
	r.Tokens[token.Token] = &cp
	return nil
}

func (r *MemoryAuthTokenRepo) Consume(_ context.Context, token string) (*models.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.Tokens[token]
	if !ok || t.IsUsed {
		return nil, nil
	}
	before := *t
	t.IsUsed = true
	return &before, nil
}

func (r *MemoryAuthTokenRepo) CountRecentByEmail(_ context.Context, email string, duration time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	since := time.Now().Add(-duration)
	var n int64
	for _, t := range r.Tokens {
		if t.Email == email && !t.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}
