// Package main provides the entry point for the docaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for docaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docaudit",
		Short: "Quality analyzer and revision tool for documentation articles",
		Long: `docaudit analyzes HTML documentation articles for quality issues and can
apply automated revisions.

Analysis grades four dimensions: readability, structure, completeness, and
style guide compliance. Revision applies deterministic style fixes and,
when a local Ollama server is available, an AI-assisted clarity pass.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewReviseCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
