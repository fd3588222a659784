// Package main provides the entry point for the natscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for natscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "natscan",
		Short: "Extract naturalisation records from digitized gazette articles",
		Long: `natscan extracts structured records (surname, given name, address,
naturalisation date) from OCR'd historical gazette articles.

Articles are harvested from the digitized-newspaper API or read from a
local JSON Lines file. Each article is normalized, dates are located by
token shape, and the text between dates is sequenced into name and
address fields. Records that fail plausibility checks are kept in a
separate rejected set for review.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewInitCmd())
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
