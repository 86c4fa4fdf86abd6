package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/normalize"
)

var normalizeProject string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Rewrite text, replacing entity aliases with canonical tags",
	Long: `Normalize substitutes every known character and scene alias in the input
text with its canonical <group>_<name> tag, longest alias first. Entities
come from the given project's extraction results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		if normalizeProject == "" {
			return fmt.Errorf("--project is required (source of known entities)")
		}

		doc, err := services.Projects.Load(normalizeProject)
		if err != nil {
			return err
		}

		text := doc.FullText
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		}
		if text == "" {
			return fmt.Errorf("input text is empty")
		}

		fmt.Fprint(cmd.OutOrStdout(), normalize.Rewrite(text, doc.Characters, doc.Scenes))
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeProject, "project", "p", "", "project id providing the known entities")
}
