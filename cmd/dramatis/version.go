package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/api"
	"github.com/jackzampolin/dramatis/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.Output(map[string]string{
			"release": version.GitRelease,
			"commit":  version.GitCommit,
		})
	},
}
