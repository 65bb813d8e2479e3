package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/ecat"
	"github.com/midbel/ecat/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestLoadFile(t *testing.T) {
	data := []struct {
		Name    string
		Input   string
		Want    ecat.DisplayOptions
		Invalid bool
	}{
		{
			Name:  "empty",
			Input: "",
			Want:  ecat.DisplayOptions{},
		},
		{
			Name: "all",
			Input: `
encoding = "GBK"
number = true
number-nonblank = true
show-ends = true
show-tabs = true
show-nonprinting = true
squeeze-blank = true
`,
			Want: ecat.DisplayOptions{
				NumberAll:       true,
				NumberNonBlank:  true,
				ShowEnds:        true,
				ShowTabs:        true,
				ShowNonPrinting: true,
				Squeeze:         true,
				Encoding:        "GBK",
			},
		},
		{
			Name:    "unknown-key",
			Input:   `colors = true`,
			Invalid: true,
		},
		{
			Name:    "bad-type",
			Input:   `number = "yes"`,
			Invalid: true,
		},
		{
			Name:    "syntax",
			Input:   `number = `,
			Invalid: true,
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got, err := config.LoadFile(writeConfig(t, d.Input))
			if d.Invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.Want, got.Display())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv(config.EnvFile, writeConfig(t, `squeeze-blank = true`))

		got, err := config.Load()
		require.NoError(t, err)
		assert.True(t, got.Squeeze)
	})
	t.Run("env-missing", func(t *testing.T) {
		t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "missing.toml"))

		_, err := config.Load()
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
	t.Run("user-missing", func(t *testing.T) {
		t.Setenv(config.EnvFile, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		got, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, config.Defaults{}, got)
	})
	t.Run("user", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(config.EnvFile, "")
		t.Setenv("XDG_CONFIG_HOME", dir)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "ecat"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "ecat", "config.toml"), []byte(`encoding = "BIG5"`), 0o644))

		got, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "BIG5", got.Encoding)
	})
}
