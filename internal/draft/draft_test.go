package draft

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reel-backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	text   string
	err    error
	calls  int
	prompt string
	opts   CompletionOptions
}

func (s *stubCompleter) Complete(_ context.Context, prompt string, opts CompletionOptions) (string, error) {
	s.calls++
	s.prompt = prompt
	s.opts = opts
	return s.text, s.err
}

var validSender = Sender{ID: "u1", Name: "Dake", Bio: "PM intern"}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		sender Sender
	}{
		{"missing id", Sender{Name: "Dake", Bio: "PM intern"}},
		{"missing name", Sender{ID: "u1", Bio: "PM intern"}},
		{"missing bio", Sender{ID: "u1", Name: "Dake"}},
		{"all missing", Sender{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.sender)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}

	require.NoError(t, Validate(validSender))
}

func TestTemplateGenerator(t *testing.T) {
	msg, err := TemplateGenerator{}.Draft(context.Background(), validSender, Recipient{Name: "Yesh", Info: "SWE at Acme"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(msg, "Hi Yesh,"), msg)
	assert.Contains(t, msg, "SWE at Acme")
	assert.Contains(t, msg, "Dake has requested to connect with you")
}

func TestTemplateGenerator_InvalidSender(t *testing.T) {
	_, err := TemplateGenerator{}.Draft(context.Background(), Sender{ID: "u1", Name: "Dake"}, Recipient{Name: "Yesh"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGenerativeGenerator_TrimsOutput(t *testing.T) {
	c := &stubCompleter{text: "  Hi Yesh, loved your work at Acme!\n"}
	g := NewGenerativeGenerator(c)

	msg, err := g.Draft(context.Background(), validSender, Recipient{Name: "Yesh", Info: "SWE at Acme"})
	require.NoError(t, err)

	assert.Equal(t, "Hi Yesh, loved your work at Acme!", msg)
	assert.Equal(t, 1, c.calls)
	assert.Contains(t, c.prompt, "PM intern")
	assert.Contains(t, c.prompt, "SWE at Acme")
	assert.Equal(t, CompletionOptions{Temperature: defaultTemperature, MaxTokens: defaultMaxTokens}, c.opts)
}

func TestGenerativeGenerator_EmptyResponse(t *testing.T) {
	g := NewGenerativeGenerator(&stubCompleter{})

	msg, err := g.Draft(context.Background(), validSender, Recipient{Name: "Yesh", Info: "SWE at Acme"})
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestGenerativeGenerator_UpstreamFailureIsNotRetried(t *testing.T) {
	c := &stubCompleter{err: errors.New("503 unavailable")}
	g := NewGenerativeGenerator(c)

	_, err := g.Draft(context.Background(), validSender, Recipient{Name: "Yesh"})
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.Equal(t, 1, c.calls)
}

func TestGenerativeGenerator_InvalidSenderSkipsCompleter(t *testing.T) {
	c := &stubCompleter{text: "unused"}
	g := NewGenerativeGenerator(c)

	_, err := g.Draft(context.Background(), Sender{}, Recipient{Name: "Yesh"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, c.calls)
}

func TestNew(t *testing.T) {
	g, err := New(context.Background(), Config{Strategy: StrategyTemplate})
	require.NoError(t, err)
	assert.IsType(t, TemplateGenerator{}, g)

	g, err = New(context.Background(), Config{})
	require.NoError(t, err)
	assert.IsType(t, TemplateGenerator{}, g)

	_, err = New(context.Background(), Config{Strategy: StrategyGenerative})
	assert.Error(t, err, "generative strategy needs an API key")

	_, err = New(context.Background(), Config{Strategy: "magic"})
	assert.Error(t, err)
}
