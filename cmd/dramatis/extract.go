package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/dramatis/internal/api"
	"github.com/jackzampolin/dramatis/internal/extract"
	"github.com/jackzampolin/dramatis/internal/project"
)

var (
	extractProfile string
	extractProject string
	promptFile     string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract characters and scenes from a document",
	Long: `Extract runs the segment-by-segment extraction pipeline over a text file
or a stored project's full text, and prints the merged entities.

With --project, the result (entities and debug log) is saved back into the
project document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setupServices(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		cfg := services.Config.Get()

		profile, err := cfg.Profile(extractProfile)
		if err != nil {
			return err
		}

		// Resolve the text source: positional file or stored project.
		var doc *project.Document
		var fullText string
		switch {
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			fullText = string(data)
			if extractProject != "" {
				doc, err = services.Projects.Load(extractProject)
				if err != nil {
					doc = project.NewDocument(extractProject, fullText)
					doc.ID = extractProject
				} else {
					doc.FullText = fullText
				}
			}
		case extractProject != "":
			doc, err = services.Projects.Load(extractProject)
			if err != nil {
				return err
			}
			fullText = doc.FullText
		default:
			return fmt.Errorf("provide an input file or --project")
		}
		if fullText == "" {
			return fmt.Errorf("input text is empty")
		}

		client, err := services.Registry.Get(profile.Provider)
		if err != nil {
			return fmt.Errorf("%w: %v", extract.ErrConfiguration, err)
		}

		prompt := ""
		if promptFile != "" {
			data, err := os.ReadFile(promptFile)
			if err != nil {
				return fmt.Errorf("failed to read prompt file: %w", err)
			}
			prompt = string(data)
		} else if doc != nil {
			prompt = doc.Prompt
		}

		opts := extract.Options{
			Prompt:        prompt,
			Model:         profile.Model,
			MaxChunkChars: profile.MaxChunkChars,
			PacingDelay:   profile.PacingDelay(),
			MaxRetries:    cfg.Extraction.MaxRetries,
			BaseDelay:     cfg.Extraction.BaseDelay(),
			MaxJitter:     cfg.Extraction.MaxJitter(),
			Logger:        services.Logger,
			Progress: func(percent int, status string) {
				fmt.Fprintf(os.Stderr, "\r[%3d%%] %s", percent, status)
			},
		}

		docID := "adhoc"
		if doc != nil {
			docID = doc.ID
		}
		result, err := services.Runner.Start(ctx, docID, client, fullText, opts)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}

		if doc != nil {
			doc.ApplyResult(result)
			if err := services.Projects.Save(doc); err != nil {
				return err
			}
		}

		return api.Output(result)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractProfile, "model", "m", "", "model profile id (default from config)")
	extractCmd.Flags().StringVarP(&extractProject, "project", "p", "", "project id to read from / save into")
	extractCmd.Flags().StringVar(&promptFile, "prompt-file", "", "file with a system prompt override")
}
