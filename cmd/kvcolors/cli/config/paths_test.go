package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/kvcolors"
)

func TestConfigHome(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		dir, err := ConfigHome()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config", dir)
	})

	t.Run("defaults to ~/.config when XDG_CONFIG_HOME not set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		home, err := os.UserHomeDir()
		require.NoError(t, err)

		dir, err := ConfigHome()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config"), dir)
	})
}

func TestStateHome(t *testing.T) {
	t.Run("uses XDG_STATE_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")

		dir, err := StateHome()
		require.NoError(t, err)
		assert.Equal(t, "/custom/state", dir)
	})

	t.Run("defaults to ~/.local/state when XDG_STATE_HOME not set", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")

		home, err := os.UserHomeDir()
		require.NoError(t, err)

		dir, err := StateHome()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "state"), dir)
	})
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/config", "kvcolors"), dir)

	file, err := File()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/config", "kvcolors", "config.yaml"), file)
}

func TestStylesheetPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	path, err := StylesheetPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/state", "quickshell", "user", "generated", "material_colors.scss"), path)
}

func TestKvantumConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path semantics")
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := KvantumConfigPath(DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Kvantum", "MaterialAdw", "MaterialAdw.kvconfig"), path)

	_, err = KvantumConfigPath("../../escape")
	assert.ErrorIs(t, err, kvcolors.ErrPathTraversal)

	_, err = KvantumConfigPath("")
	assert.Error(t, err)
}
