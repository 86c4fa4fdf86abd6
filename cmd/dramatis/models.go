package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/api"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List configured model profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		cfg := services.Config.Get()
		return api.Output(map[string]any{
			"default":  cfg.Extraction.DefaultProfile,
			"profiles": cfg.Profiles,
		})
	},
}
