package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/api"
	"github.com/jackzampolin/dramatis/internal/chapters"
)

var chaptersProject string

var chaptersCmd = &cobra.Command{
	Use:   "chapters [file]",
	Short: "Split a document into chapters by heading pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}

		var text string
		switch {
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(data)
		case chaptersProject != "":
			doc, err := services.Projects.Load(chaptersProject)
			if err != nil {
				return err
			}
			text = doc.FullText
		default:
			return fmt.Errorf("provide an input file or --project")
		}

		result := chapters.Split(text)

		if chaptersProject != "" {
			doc, err := services.Projects.Load(chaptersProject)
			if err == nil {
				doc.Chapters = result
				if err := services.Projects.Save(doc); err != nil {
					return err
				}
			}
		}

		return api.Output(result)
	},
}

func init() {
	chaptersCmd.Flags().StringVarP(&chaptersProject, "project", "p", "", "project id to read from / save into")
}
