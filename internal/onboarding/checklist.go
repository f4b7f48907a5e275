// Package onboarding derives the dashboard checklist from a session
// snapshot.
package onboarding

import "reel-backend/internal/models"

// Snapshot is the session state the dashboard works from: the current
// profile plus the "first message sent" marker. It mirrors the JSON the
// browser caches, and it is treated as an immutable value.
type Snapshot struct {
	Profile          *models.Profile `json:"model"`
	FirstMessageSent bool            `json:"first_message_sent"`
}

// NewSnapshot builds a snapshot from a stored profile.
func NewSnapshot(p *models.Profile) Snapshot {
	s := Snapshot{Profile: p}
	if p != nil {
		s.FirstMessageSent = p.FirstMessageSent
	}
	return s
}

// WithProfile returns a copy of s holding p.
func (s Snapshot) WithProfile(p *models.Profile) Snapshot {
	s.Profile = p
	return s
}

// WithFirstMessageSent returns a copy of s with the marker set.
func (s Snapshot) WithFirstMessageSent() Snapshot {
	s.FirstMessageSent = true
	return s
}

type Checklist struct {
	ExtensionInstalled bool `json:"extension_installed"`
	BioComplete        bool `json:"bio_complete"`
	FirstMessageSent   bool `json:"first_message_sent"`
}

// Compute derives the checklist. It has no side effects and is meant to be
// called again whenever the snapshot changes.
//
// ExtensionInstalled is not verified against the extension; it is set for
// any existing snapshot. FirstMessageSent only counts once the bio is
// complete.
func Compute(s *Snapshot) Checklist {
	if s == nil {
		return Checklist{}
	}

	bio := s.Profile != nil && s.Profile.Bio != ""
	return Checklist{
		ExtensionInstalled: true,
		BioComplete:        bio,
		FirstMessageSent:   bio && s.FirstMessageSent,
	}
}
