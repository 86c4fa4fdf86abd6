package config

import (
	"github.com/jackzampolin/dramatis/internal/providers"
)

// ToRegistryConfig converts the config to a format suitable for
// providers.Registry. It resolves all ${ENV_VAR} references in API keys
// and creates one client per provider referenced by a model profile.
func (c *Config) ToRegistryConfig() providers.RegistryConfig {
	cfg := providers.RegistryConfig{
		Clients: make(map[string]providers.ClientConfig),
	}

	for _, p := range c.Profiles {
		if _, ok := cfg.Clients[p.Provider]; ok {
			continue
		}
		cfg.Clients[p.Provider] = providers.ClientConfig{
			Type:   p.Provider,
			APIKey: c.ResolveAPIKey(p.Provider),
		}
	}

	return cfg
}
