// Package config handles loading and hot-reloading configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ModelProfile describes one available extraction model. The selected
// profile determines the chunk size and the pacing between calls.
type ModelProfile struct {
	ID                string `mapstructure:"id" yaml:"id" json:"id"`
	Provider          string `mapstructure:"provider" yaml:"provider" json:"provider"`
	Model             string `mapstructure:"model" yaml:"model" json:"model"`
	MaxChunkChars     int    `mapstructure:"max_chunk_chars" yaml:"max_chunk_chars" json:"max_chunk_chars"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute" json:"requests_per_minute"`
}

// PacingDelay returns the minimum wall-clock spacing between successful
// extraction calls for this profile.
func (p ModelProfile) PacingDelay() time.Duration {
	if p.RequestsPerMinute <= 0 {
		return 0
	}
	return time.Minute / time.Duration(p.RequestsPerMinute)
}

// ExtractionSettings holds retry and backoff tuning for the pipeline.
type ExtractionSettings struct {
	MaxRetries     uint   `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	BaseDelayMs    int    `mapstructure:"base_delay_ms" yaml:"base_delay_ms" json:"base_delay_ms"`
	MaxJitterMs    int    `mapstructure:"max_jitter_ms" yaml:"max_jitter_ms" json:"max_jitter_ms"`
	DefaultProfile string `mapstructure:"default_profile" yaml:"default_profile" json:"default_profile"`
}

// BaseDelay returns the base retry delay.
func (s ExtractionSettings) BaseDelay() time.Duration {
	return time.Duration(s.BaseDelayMs) * time.Millisecond
}

// MaxJitter returns the jitter bound added to each retry wait.
func (s ExtractionSettings) MaxJitter() time.Duration {
	return time.Duration(s.MaxJitterMs) * time.Millisecond
}

// Config is the top-level configuration.
type Config struct {
	APIKeys    map[string]string  `mapstructure:"api_keys" yaml:"api_keys" json:"api_keys"`
	Profiles   []ModelProfile     `mapstructure:"profiles" yaml:"profiles" json:"profiles"`
	Extraction ExtractionSettings `mapstructure:"extraction" yaml:"extraction" json:"extraction"`
}

// Profile looks up a model profile by id. An empty id selects the
// configured default profile.
func (c *Config) Profile(id string) (ModelProfile, error) {
	if id == "" {
		id = c.Extraction.DefaultProfile
	}
	for _, p := range c.Profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return ModelProfile{}, fmt.Errorf("model profile not found: %s", id)
}

// ResolveAPIKey returns the API key for a provider with ${ENV_VAR}
// references expanded.
func (c *Config) ResolveAPIKey(provider string) string {
	return ResolveEnvVars(c.APIKeys[provider])
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("api_keys", defaults.APIKeys)
	viper.SetDefault("profiles", defaults.Profiles)
	viper.SetDefault("extraction", defaults.Extraction)

	// Environment variables with DRAMATIS_ prefix
	viper.SetEnvPrefix("DRAMATIS")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.dramatis")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	pattern := regexp.MustCompile(`\$\{([^}]+)\}`)
	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}
