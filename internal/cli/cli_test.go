package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jsonscrub/internal/cli"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd("test")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`[{"name":" bob "},{"name":"alice"}]`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"),
		[]byte(`not json`), 0600))

	out, err := runCommand(t, "process", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 2 records.")
}

func TestProcessCommand_MissingDirectoryFails(t *testing.T) {
	_, err := runCommand(t, "process", "--dir", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source directory not found")
}

func TestProcessCommand_ZeroLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"),
		[]byte(`[{"name":"x"}]`), 0600))

	out, err := runCommand(t, "process", "--dir", dir, "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 0 records.")
}

func TestUsersLookupCommand(t *testing.T) {
	roster := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(roster,
		[]byte(`[{"id":1,"name":"A"},{"id":2,"name":"B"}]`), 0600))

	out, err := runCommand(t, "users", "lookup", "2", "--file", roster)
	require.NoError(t, err)
	assert.Contains(t, out, `"name":"B"`)
}

func TestUsersLookupCommand_AbsentUserIsNotAnError(t *testing.T) {
	roster := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(roster,
		[]byte(`[{"id":1,"name":"A"}]`), 0600))

	out, err := runCommand(t, "users", "lookup", "99", "--file", roster)
	require.NoError(t, err)
	assert.Contains(t, out, "user not found: 99")
}

func TestUsersLookupCommand_MissingRosterFails(t *testing.T) {
	_, err := runCommand(t, "users", "lookup", "1",
		"--file", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading roster")
}
