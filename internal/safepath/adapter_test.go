package safepath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/kvcolors/core"
)

func TestConfined(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	root := tempDir(t)
	cfg := filepath.Join(root, "config")
	state := filepath.Join(root, "state")
	require.NoError(t, os.MkdirAll(cfg, 0o750))
	require.NoError(t, os.MkdirAll(state, 0o750))
	require.NoError(t, os.Symlink(filepath.Join(root, "elsewhere"), filepath.Join(cfg, "out")))

	c := NewConfined(cfg, state)

	t.Run("file inside", func(t *testing.T) {
		t.Parallel()
		got, err := c.ValidateFilePath(filepath.Join(cfg, "theme.kvconfig"), core.FileOptions{
			AllowedExtensions: []string{".kvconfig"},
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cfg, "theme.kvconfig"), got)
	})

	t.Run("file outside", func(t *testing.T) {
		t.Parallel()
		_, err := c.ValidateFilePath(filepath.Join(root, "theme.kvconfig"), core.FileOptions{})
		assert.ErrorIs(t, err, core.ErrNotAllowedDir)
	})

	t.Run("file escaping through link", func(t *testing.T) {
		t.Parallel()
		_, err := c.ValidateFilePath(filepath.Join(cfg, "out", "x.kvconfig"), core.FileOptions{})
		assert.ErrorIs(t, err, core.ErrNotAllowedDir)
	})

	t.Run("extension checked before confinement", func(t *testing.T) {
		t.Parallel()
		_, err := c.ValidateFilePath(filepath.Join(root, "x.txt"), core.FileOptions{
			AllowedExtensions: []string{".kvconfig"},
		})
		assert.ErrorIs(t, err, core.ErrExtensionNotAllowed)
	})

	t.Run("link into a directory named like a variable", func(t *testing.T) {
		t.Parallel()
		literal := filepath.Join(cfg, "$KVCOLORS_LITERAL_DIR")
		require.NoError(t, os.MkdirAll(literal, 0o750))
		require.NoError(t, os.Symlink(literal, filepath.Join(cfg, "dollar")))

		got, err := c.ValidateFilePath(filepath.Join(cfg, "dollar", "theme.kvconfig"), core.FileOptions{
			AllowedExtensions: []string{".kvconfig"},
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(literal, "theme.kvconfig"), got)
	})

	t.Run("path defaults to confined dirs", func(t *testing.T) {
		t.Parallel()
		_, err := c.ValidatePath(filepath.Join(state, "x"), core.ValidateOptions{})
		require.NoError(t, err)

		_, err = c.ValidatePath(root, core.ValidateOptions{})
		assert.ErrorIs(t, err, core.ErrNotAllowedDir)
	})

	t.Run("explicit allowed dirs win", func(t *testing.T) {
		t.Parallel()
		got, err := c.ValidatePath(filepath.Join(root, "x"), core.ValidateOptions{AllowedDirs: []string{root}})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "x"), got)
	})

	t.Run("unconfined", func(t *testing.T) {
		t.Parallel()
		got, err := NewConfined().ValidateFilePath(filepath.Join(root, "x.scss"), core.FileOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "x.scss"), got)
	})
}
