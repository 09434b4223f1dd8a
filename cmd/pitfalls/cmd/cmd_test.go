package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		cfgFile = ""
		verbose = false
	})

	err = rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestDecimalCommand(t *testing.T) {
	stdout, _, err := run(t, "decimal")
	require.NoError(t, err)
	require.Contains(t, stdout, "2.345 → 2 dp, HALF_EVEN: 2.34")
	require.Contains(t, stdout, "Strip zeros equal?  true")
}

func TestExceptionCommand(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("hello\n"), 0o600))

	t.Setenv("PITFALLS_NOTES_FILE", notes)

	stdout, stderr, err := run(t, "exception")
	require.NoError(t, err)
	require.Contains(t, stdout, "First line: hello")
	require.Contains(t, stdout, "This line is reachable")
	require.Contains(t, stderr, "user must be 18 or older")
}

func TestExceptionCommandConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pitfalls.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minimum_age: 16\nnotes_file: "+filepath.Join(dir, "none.txt")+"\n"), 0o600))

	stdout, stderr, err := run(t, "--config", path, "--verbose", "exception")
	require.NoError(t, err)
	require.Contains(t, stdout, "Welcome! You can enter the application (age 17).")
	require.Contains(t, stderr, "File missing (from helper)")
	require.Contains(t, stderr, "loaded config from "+path)
}

func TestExceptionCommandBadConfig(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "exception")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "pitfalls v"+Version)
}
