package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	// Registers the "sqlite" driver for the user directory's storage handle.
	_ "modernc.org/sqlite"

	"github.com/rshade/jsonscrub/internal/config"
	"github.com/rshade/jsonscrub/internal/directory"
	"github.com/rshade/jsonscrub/internal/ingest"
)

// newUsersCmd creates the users command group.
func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User directory operations",
	}
	cmd.AddCommand(newUsersLookupCmd())
	return cmd
}

// newUsersLookupCmd creates the users lookup command, which populates the
// in-memory roster from a JSON file and looks up one user by ID.
func newUsersLookupCmd() *cobra.Command {
	var rosterFile string

	cmd := &cobra.Command{
		Use:   "lookup <id>",
		Short: "Look up a user by ID",
		Long: `Loads a roster of users from a JSON array file into the in-memory user
directory and prints the first user whose "id" field matches the argument.

A numeric argument matches numeric JSON ids; anything else matches as a
string. A missing user is a normal outcome, not an error.`,
		Example: `  # Look up user 42 from users.json
  jsonscrub users lookup 42 --file users.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersLookup(cmd, rosterFile, args[0])
		},
	}

	cmd.Flags().StringVar(&rosterFile, "file", "users.json", "JSON file holding the user roster")

	return cmd
}

func runUsersLookup(cmd *cobra.Command, rosterFile, rawID string) error {
	cfg := config.New()

	// The storage handle is held by the directory but never queried;
	// sql.Open does not touch the file, so a missing database is fine.
	store, err := sql.Open("sqlite", cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening storage handle: %w", err)
	}
	defer store.Close()

	records, err := ingest.Load(cmd.Context(), rosterFile)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	dir := directory.New(store)
	for _, r := range records {
		dir.Users = append(dir.Users, directory.User(r))
	}

	user, ok := dir.GetUser(parseUserID(rawID))
	if !ok {
		cmd.Printf("user not found: %s\n", rawID)
		return nil
	}

	out, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("rendering user: %w", err)
	}
	cmd.Println(string(out))

	return nil
}

// parseUserID maps the CLI argument onto the type JSON decoding produces:
// numbers decode as float64, everything else stays a string.
func parseUserID(raw string) any {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
