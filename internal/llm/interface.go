package llm

import (
	"context"

	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
)

// Provider defines the interface for hosted model backends
type Provider interface {
	// Complete sends a rendered prompt plus output contract to the model and
	// returns the raw JSON of its answer
	Complete(ctx context.Context, p *prompt.Prompt, contract *schema.Contract) ([]byte, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}

// Generator is the single chokepoint the flow orchestrators call. The
// returned value conforms to the contract or the call fails; there is no
// partially valid result.
type Generator interface {
	Generate(ctx context.Context, p *prompt.Prompt, contract *schema.Contract, out interface{}) error
}
