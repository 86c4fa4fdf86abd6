// Package svcctx provides service context for dependency injection via context.
// This package is separate from the command layer to avoid import cycles.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/dramatis/internal/config"
	"github.com/jackzampolin/dramatis/internal/extract"
	"github.com/jackzampolin/dramatis/internal/home"
	"github.com/jackzampolin/dramatis/internal/project"
	"github.com/jackzampolin/dramatis/internal/providers"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Config   *config.Manager
	Registry *providers.Registry
	Runner   *extract.Runner
	Projects *project.Store
	Home     *home.Dir
	Logger   *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// RunnerFrom extracts the extraction runner from context.
func RunnerFrom(ctx context.Context) *extract.Runner {
	if s := ServicesFrom(ctx); s != nil {
		return s.Runner
	}
	return nil
}

// ProjectsFrom extracts the project store from context.
func ProjectsFrom(ctx context.Context) *project.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Projects
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
