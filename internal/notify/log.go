package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier implements Notifier by logging the event. The extension
// pulls its state from the API, so a log line is all the server emits.
type LogNotifier struct {
	logger      *zap.Logger
	extensionID string
}

func NewLogNotifier(logger *zap.Logger, extensionID string) *LogNotifier {
	return &LogNotifier{logger: logger, extensionID: extensionID}
}

func (n *LogNotifier) ProfileUpdated(ctx context.Context, event ProfileUpdated) error {
	n.logger.Info("📨 profile updated",
		zap.String("extension_id", n.extensionID),
		zap.String("identity_id", event.IdentityID),
		zap.Int("bio_len", len(event.Bio)),
	)
	return nil
}
