package draft

import (
	"context"
	"fmt"
)

const (
	StrategyTemplate   = "template"
	StrategyGenerative = "generative"
)

type Config struct {
	Strategy     string
	GeminiAPIKey string
	GeminiModel  string
}

// New returns the Generator selected by cfg.Strategy.
func New(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Strategy {
	case StrategyTemplate, "":
		return TemplateGenerator{}, nil
	case StrategyGenerative:
		c, err := NewGenAICompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return NewGenerativeGenerator(c), nil
	default:
		return nil, fmt.Errorf("unknown draft strategy: %s", cfg.Strategy)
	}
}
