package providers

import "time"

// ClientConfig describes one LLM client to instantiate.
type ClientConfig struct {
	Type         string // "openrouter", "openai", "mock"
	APIKey       string
	DefaultModel string
	Timeout      time.Duration
}

// RegistryConfig maps client names to their configuration.
type RegistryConfig struct {
	Clients map[string]ClientConfig
}

// Configure instantiates clients from config and registers them,
// replacing any clients registered under the same names.
func (r *Registry) Configure(cfg RegistryConfig) {
	for name, cc := range cfg.Clients {
		switch cc.Type {
		case "openrouter":
			r.Register(name, NewOpenRouterClient(OpenRouterConfig{
				APIKey:       cc.APIKey,
				DefaultModel: cc.DefaultModel,
				Timeout:      cc.Timeout,
			}))
		case "openai":
			r.Register(name, NewOpenAIClient(OpenAIConfig{
				APIKey:       cc.APIKey,
				DefaultModel: cc.DefaultModel,
				Timeout:      cc.Timeout,
			}))
		case "mock":
			r.Register(name, NewMockClient())
		default:
			if r.logger != nil {
				r.logger.Warn("unknown LLM client type", "name", name, "type", cc.Type)
			}
		}
	}
}
