package llm

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"staffhub-utils/internal/config"
	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/internal/logging"
	"staffhub-utils/pkg/utils"
)

// Manager manages the LLM provider lifecycle and is the Generator the flow
// orchestrators use. Rate limiting lives here as an infrastructure concern;
// it is not part of the flow contract.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	rps := rate.Limit(float64(cfg.LLM.RateLimit) / 60.0)
	burst := cfg.LLM.RateLimit / 10
	if burst < 1 {
		burst = 1
	}

	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: rate.NewLimiter(rps, burst),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - AI flows will be unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
		// Allow the server to start without LLM
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// Generate sends a rendered prompt to the provider and decodes the response
// into out, checking it against the contract. Every failure surfaces as a
// gateway or model-format error; no defaults are substituted.
func (m *Manager) Generate(ctx context.Context, p *prompt.Prompt, contract *schema.Contract, out interface{}) error {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return utils.NewLLMError("LLM manager not started or provider not available")
	}

	if !healthy {
		return utils.NewLLMError("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return utils.NewLLMError(fmt.Sprintf("request cancelled while rate limited: %v", err))
	}

	raw, err := provider.Complete(ctx, p, contract)
	if err != nil {
		return utils.NewLLMError(err.Error())
	}

	return schema.Decode(raw, out)
}

// IsHealthy checks if the LLM manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
