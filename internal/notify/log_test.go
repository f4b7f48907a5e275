package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_ProfileUpdated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core), "ext-123")

	err := n.ProfileUpdated(context.Background(), ProfileUpdated{IdentityID: "u1", Bio: "PM intern"})
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "ext-123", fields["extension_id"])
	assert.Equal(t, "u1", fields["identity_id"])
	assert.EqualValues(t, 9, fields["bio_len"])
}
