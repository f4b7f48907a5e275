// Package draft writes short LinkedIn connection messages for a sender and
// recipient pair.
package draft

import (
	"context"
	"fmt"
	"strings"

	"reel-backend/internal/common"
)

type Sender struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type Recipient struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

// Generator produces an outreach message.
type Generator interface {
	Draft(ctx context.Context, sender Sender, recipient Recipient) (string, error)
}

// Validate reports whether the sender carries everything a draft needs.
func Validate(sender Sender) error {
	if sender.ID == "" || sender.Name == "" || sender.Bio == "" {
		return fmt.Errorf("%w: sender id, name and bio are required", common.ErrInvalidInput)
	}
	return nil
}

// TemplateGenerator fills a fixed message. It never calls out.
type TemplateGenerator struct{}

func (TemplateGenerator) Draft(_ context.Context, sender Sender, recipient Recipient) (string, error) {
	if err := Validate(sender); err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Hi %s,\n\n%s has requested to connect with you. They like this experience you have: %s",
		recipient.Name, sender.Name, recipient.Info,
	), nil
}

// CompletionOptions are the decoding parameters sent with each prompt.
type CompletionOptions struct {
	Temperature float32
	MaxTokens   int32
}

// Completer sends a prompt to a text completion API.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 120
)

// GenerativeGenerator asks a completion API to write the message. Each
// draft is a single attempt.
type GenerativeGenerator struct {
	completer Completer
	opts      CompletionOptions
}

func NewGenerativeGenerator(c Completer) *GenerativeGenerator {
	return &GenerativeGenerator{
		completer: c,
		opts: CompletionOptions{
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		},
	}
}

func (g *GenerativeGenerator) Draft(ctx context.Context, sender Sender, recipient Recipient) (string, error) {
	if err := Validate(sender); err != nil {
		return "", err
	}

	text, err := g.completer.Complete(ctx, BuildPrompt(sender, recipient), g.opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return strings.TrimSpace(text), nil
}

// BuildPrompt describes both people and asks for a connection note short
// enough for LinkedIn's 300 character limit.
func BuildPrompt(sender Sender, recipient Recipient) string {
	var b strings.Builder
	b.WriteString("Write a friendly LinkedIn connection request message under 300 characters.\n")
	fmt.Fprintf(&b, "The sender is %s. About the sender: %s\n", sender.Name, sender.Bio)
	fmt.Fprintf(&b, "The recipient is %s. About the recipient: %s\n", recipient.Name, recipient.Info)
	b.WriteString("Address the recipient by first name and mention something specific from their background. ")
	b.WriteString("Reply with the message text only.")
	return b.String()
}
