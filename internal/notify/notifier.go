package notify

import "context"

// ProfileUpdated tells the browser extension to refresh its cached profile.
type ProfileUpdated struct {
	IdentityID string
	Bio        string
}

// Notifier delivers profile change events to the companion extension.
// Delivery is best effort; callers log failures and carry on.
type Notifier interface {
	ProfileUpdated(ctx context.Context, event ProfileUpdated) error
}
