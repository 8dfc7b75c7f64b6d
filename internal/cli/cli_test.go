package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/schemeconv/schemeconv/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath(name string) string {
	return filepath.Join("..", "..", "test", "fixtures", "schemes", name)
}

func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCmd()
	// cobra falls back to os.Args when given a nil slice
	cmd.SetArgs(append([]string{}, args...))
	return cmd.Execute()
}

func TestRootCmd(t *testing.T) {
	t.Run("converts a scheme into the output directory", func(t *testing.T) {
		dir := t.TempDir()
		err := runCmd(t, "--out-dir", dir, fixturePath("monokai.sublime-color-scheme"))
		require.NoError(t, err)

		out, err := os.ReadFile(filepath.Join(dir, "monokai.tmTheme"))
		require.NoError(t, err)
		assert.Contains(t, string(out), "<plist")
		assert.Contains(t, string(out), "Monokai Test")
		assert.Contains(t, string(out), "#e6db74")
	})

	t.Run("converts several schemes in one run", func(t *testing.T) {
		dir := t.TempDir()
		err := runCmd(t, "--out-dir", dir,
			fixturePath("monokai.sublime-color-scheme"),
			fixturePath("basic.yaml"))
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "monokai.tmTheme"))
		assert.FileExists(t, filepath.Join(dir, "basic.tmTheme"))
	})

	t.Run("expands glob patterns", func(t *testing.T) {
		dir := t.TempDir()
		err := runCmd(t, "--out-dir", dir, fixturePath("*.yaml"))
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "basic.tmTheme"))
	})

	t.Run("no arguments is a usage error", func(t *testing.T) {
		err := runCmd(t)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cli.ErrUsage))
	})

	t.Run("pattern matching nothing is an error", func(t *testing.T) {
		err := runCmd(t, fixturePath("*.nope"))
		assert.Error(t, err)
	})

	t.Run("structurally broken scheme produces no output", func(t *testing.T) {
		dir := t.TempDir()
		err := runCmd(t, "--out-dir", dir, fixturePath("missing-rules.sublime-color-scheme"))
		require.Error(t, err)

		assert.NoFileExists(t, filepath.Join(dir, "missing-rules.tmTheme"))
	})

	t.Run("version subcommand runs", func(t *testing.T) {
		err := runCmd(t, "version")
		assert.NoError(t, err)
	})
}
