package main

import "github.com/spf13/cobra"

var (
	outputDir  string
	skipSchema bool
)

var rootCmd = &cobra.Command{
	Use:   "workflowforge",
	Short: "Workflow generator: in-memory pipeline model → GitHub Actions YAML",
	Long:  "workflowforge builds this repository's GitHub Actions workflows from declarative in-process definitions and writes deterministic, schema-checked YAML",
}

func init() {
	registerGenerateCommand(rootCmd)
	registerCheckCommand(rootCmd)
}
