package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/jsonscrub/internal/cleaner"
	"github.com/rshade/jsonscrub/internal/config"
)

// newProcessCmd creates the process command, which runs one cleaning pass
// over the source directory.
func newProcessCmd() *cobra.Command {
	var (
		dir   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Clean JSON record files from the source directory",
		Long: `Scans the source directory for files ending in .json, loads each as a JSON
array of records, normalizes every record (trimmed, title-cased name plus a
"processed" status), and prints the accumulated record count.

Files that fail to read or parse are skipped with a logged warning and count
against the file limit. Files are visited in directory-listing order.`,
		Example: `  # Clean up to 10 files from the configured source directory
  jsonscrub process

  # Clean at most 3 files from ./incoming
  jsonscrub process --dir ./incoming --limit 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, dir, limit)
		},
	}

	cfg := config.New()
	cmd.Flags().StringVar(&dir, "dir", cfg.Source.Dir, "source directory to scan for .json files")
	cmd.Flags().IntVar(&limit, "limit", cfg.Source.FileLimit, "maximum number of files to consider")

	return cmd
}

// runProcess executes one cleaning pass. A bad source directory fails
// construction and is returned unhandled, terminating the command.
func runProcess(cmd *cobra.Command, dir string, limit int) error {
	c, err := cleaner.New(dir)
	if err != nil {
		return err
	}

	results := c.Process(cmd.Context(), limit)
	cmd.Printf("Processed %d records.\n", len(results))

	return nil
}
