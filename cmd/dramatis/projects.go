package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/api"
	"github.com/jackzampolin/dramatis/internal/project"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage stored projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		list, err := services.Projects.List()
		if err != nil {
			return err
		}
		return api.Output(list)
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project's entities and chapters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		doc, err := services.Projects.Load(args[0])
		if err != nil {
			return err
		}
		// Omit the full text from display output.
		doc.FullText = fmt.Sprintf("(%d chars)", len([]rune(doc.FullText)))
		return api.Output(doc)
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name> <file>",
	Short: "Create a project from a text file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		doc := project.NewDocument(args[0], string(data))
		if err := services.Projects.Save(doc); err != nil {
			return err
		}
		return api.Output(doc.Summarize())
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		return services.Projects.Delete(args[0])
	},
}

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
}
