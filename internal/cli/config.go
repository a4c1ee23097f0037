package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/jsonscrub/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration operations",
	}
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  "Validates ~/.jsonscrub/config.yaml for syntax and semantic correctness.",
		Example: `  # Validate current configuration
  jsonscrub config validate

  # Validate and show resolved values
  jsonscrub config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show resolved configuration values")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.New()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Println("Configuration is valid")

	if verbose {
		cmd.Println()
		cmd.Println("Configuration details:")
		cmd.Printf("  Source directory: %s\n", cfg.Source.Dir)
		cmd.Printf("  File limit: %d\n", cfg.Source.FileLimit)
		cmd.Printf("  Storage path: %s\n", cfg.Storage.Path)
		cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
		cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	}

	return nil
}
