package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/api"
	"github.com/jackzampolin/dramatis/internal/config"
	"github.com/jackzampolin/dramatis/internal/extract"
	"github.com/jackzampolin/dramatis/internal/home"
	"github.com/jackzampolin/dramatis/internal/project"
	"github.com/jackzampolin/dramatis/internal/providers"
	"github.com/jackzampolin/dramatis/internal/svcctx"
	"github.com/jackzampolin/dramatis/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "dramatis",
	Short: "Entity extraction pipeline for long-form fiction",
	Long: `Dramatis ingests a long document, splits it into bounded segments, and
calls an LLM per segment to extract characters and scenes, merging results
so the same entity recognized under different names is consolidated into
one canonical record.

The pipeline includes:
  - Deterministic chunking with cross-segment context carry-over
  - Rate-limit aware retry/backoff and call pacing
  - Deterministic merge/dedup of entities across segments
  - A chapter splitter and an alias-normalizing text rewriter`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.dramatis/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "dramatis home directory (default: ~/.dramatis)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(modelsCmd)
}

// setupServices builds the service set for a command invocation and attaches
// it to the command's context.
func setupServices(cmd *cobra.Command) (*svcctx.Services, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	hd, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	if err := hd.EnsureExists(); err != nil {
		return nil, err
	}

	file := cfgFile
	if file == "" && hd.ConfigExists() {
		file = hd.ConfigPath()
	}
	cm, err := config.NewManager(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry := providers.NewRegistry()
	registry.SetLogger(logger)
	registry.Configure(cm.Get().ToRegistryConfig())
	cm.OnChange(func(cfg *config.Config) {
		registry.Configure(cfg.ToRegistryConfig())
	})
	cm.WatchConfig()

	services := &svcctx.Services{
		Config:   cm,
		Registry: registry,
		Runner:   extract.NewRunner(),
		Projects: project.NewStore(hd.ProjectsPath()),
		Home:     hd,
		Logger:   logger,
	}
	cmd.SetContext(svcctx.WithServices(cmd.Context(), services))
	return services, nil
}
