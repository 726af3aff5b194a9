// Package cmd defines the planflow CLI.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planflow",
	Short: "Conversational project planning service",
	Long: `planflow turns a chat conversation about a project idea into a structured
project plan with milestones, a technology stack, resource suggestions, and a
task schedule. It serves an HTTP API backed by a chain of language models with
a deterministic local fallback, and renders plans as HTML or PDF reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
