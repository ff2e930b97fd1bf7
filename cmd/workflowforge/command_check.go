package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourceplane/workflowforge/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the workflow definitions without writing files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkWorkflows()
	},
}

func registerCheckCommand(root *cobra.Command) {
	root.AddCommand(checkCmd)
}

func checkWorkflows() error {
	for _, def := range definitions {
		w, err := def.build()
		if err != nil {
			return err
		}
		data, err := w.Render()
		if err != nil {
			return fmt.Errorf("%s: %w", def.file, err)
		}
		if err := schema.ValidateWorkflow(data); err != nil {
			return fmt.Errorf("%s: %w", def.file, err)
		}
		fmt.Printf("%s: ok (%d bytes)\n", def.file, len(data))
	}
	return nil
}
