// Package cli wires the jsonscrub command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the jsonscrub CLI.
// It wires up logging and the process, users, and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jsonscrub",
		Short:   "Batch-clean JSON record files",
		Long:    "jsonscrub: normalize JSON record files from a source directory and look up users from an in-memory roster",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newProcessCmd(), newUsersCmd(), newConfigCmd())

	return cmd
}

// Execute runs the root command, exiting non-zero on error.
func Execute(ver string) {
	if err := NewRootCmd(ver).Execute(); err != nil {
		os.Exit(1)
	}
}

const rootCmdExample = `  # Clean up to 10 JSON files from ./data
  jsonscrub process

  # Clean at most 3 files from a specific directory
  jsonscrub process --dir ./incoming --limit 3

  # Look up a user by ID from a roster file
  jsonscrub users lookup 42 --file users.json

  # Validate configuration
  jsonscrub config validate`
