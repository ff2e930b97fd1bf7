package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sourceplane/workflowforge/schema"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the workflow files",
	Long:  "Build every workflow definition, validate it against the bundled workflow schema, and write it to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateWorkflows()
	},
}

func registerGenerateCommand(root *cobra.Command) {
	root.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".github/workflows", "Directory to write workflow files to")
	generateCmd.Flags().BoolVar(&skipSchema, "skip-schema", false, "Skip schema validation of rendered documents")
}

func generateWorkflows() error {
	for _, def := range definitions {
		w, err := def.build()
		if err != nil {
			return err
		}

		if !skipSchema {
			data, err := w.Render()
			if err != nil {
				return fmt.Errorf("%s: %w", def.file, err)
			}
			if err := schema.ValidateWorkflow(data); err != nil {
				return fmt.Errorf("%s: %w", def.file, err)
			}
		}

		path := filepath.Join(outputDir, def.file)
		if err := w.Save(path); err != nil {
			return fmt.Errorf("%s: %w", def.file, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
