// Package agent selects which generation provider serves each task, from
// a yaml configuration decoded at startup.
package agent

import (
	"context"
	"fmt"
	"os"
	"sync"

	"quiebre/pkg/core/llm"
)

type Config struct {
	ActiveProvider string                `yaml:"active_provider"`
	Tasks          map[string]TaskConfig `yaml:"tasks"`
}

type TaskConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Description string `yaml:"description"`
}

// Manager resolves providers for tasks. The active provider can be
// switched at runtime while requests are being served, so config access
// is guarded; the providers map is fixed at construction.
type Manager struct {
	mu        sync.RWMutex
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	if config.ActiveProvider == "" {
		config.ActiveProvider = "openai"
	}
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"openai":   &llm.OpenAIProvider{},
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider resolves the provider for a task, honoring per-task
// overrides before the global active provider.
func (m *Manager) GetProvider(task string) llm.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if taskConfig, ok := m.config.Tasks[task]; ok && taskConfig.Provider != "" {
		if p, ok := m.providers[taskConfig.Provider]; ok {
			return p
		}
	}

	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}

	return m.providers["openai"]
}

// GetProviderByName retrieves a provider instance by its name.
func (m *Manager) GetProviderByName(name string) llm.Provider {
	if p, ok := m.providers[name]; ok {
		return p
	}
	return nil
}

// ExecutePrompt handles instruction adaptation before sending to the model.
func (m *Manager) ExecutePrompt(ctx context.Context, task string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(task)
	adaptedSystemPrompt := provider.AdaptInstructions(rawSystemPrompt)
	return provider.GenerateResponse(ctx, rawPrompt, adaptedSystemPrompt, options)
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.mu.Lock()
	m.config.ActiveProvider = newProvider
	m.mu.Unlock()
	fmt.Printf("[AGENT] Global provider set to: %s\n", newProvider)
	return nil
}

func (m *Manager) GetActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveProvider
}

// ProviderNames lists the configured provider names.
func (m *Manager) ProviderNames() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}

// VerifyCredential fails when the active provider's API credential is
// absent from the environment. Run at startup so a misconfigured process
// refuses to serve traffic instead of failing per-request.
func (m *Manager) VerifyCredential() error {
	active := m.GetActiveProvider()
	p, ok := m.providers[active]
	if !ok {
		return fmt.Errorf("unknown active provider: %s", active)
	}
	envVar := p.Credential()
	if os.Getenv(envVar) == "" {
		return fmt.Errorf("%s environment variable not set for provider %s", envVar, active)
	}
	return nil
}
