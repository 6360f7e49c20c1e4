package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets TD_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvSlot, EnvConfirmDelete, EnvLogLevel, EnvColor} {
		if v, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, v) })
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("no .tdconfig.yaml returns defaults", func(t *testing.T) {
		clearEnv(t)
		s, err := Init(t.TempDir())
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, DefaultSlot, cfg.Slot)
		assert.Equal(t, DefaultConfirmDelete, cfg.ConfirmDelete)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("full .tdconfig.yaml loads all values", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		content := `slot: work
confirm_delete: false
log_level: debug
color: never
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte(content), 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "work", cfg.Slot)
		assert.False(t, cfg.ConfirmDelete)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ColorNever, cfg.Color)
	})

	t.Run("partial .tdconfig.yaml merges with defaults", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte("confirm_delete: false\n"), 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.False(t, cfg.ConfirmDelete)
		assert.Equal(t, DefaultSlot, cfg.Slot)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte("slot: [unclosed\n"), 0644))

		_, err = s.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte("slot: work\n"), 0644))
		t.Setenv(EnvSlot, "home")
		t.Setenv(EnvConfirmDelete, "false")

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "home", cfg.Slot)
		assert.False(t, cfg.ConfirmDelete)
	})

	t.Run(".env file is read but never beats the process environment", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TD_SLOT=fromfile\nTD_LOG_LEVEL=error\n"), 0644))
		t.Setenv(EnvLogLevel, "info")

		cfg, err := s.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "fromfile", cfg.Slot)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			env     map[string]string
			want    string
		}{
			{"bad color", "color: rainbow\n", nil, "invalid color"},
			{"bad log level", "log_level: loud\n", nil, "invalid log_level"},
			{"bad slot", "slot: ../x\n", nil, "invalid slot"},
			{"bad confirm env", "", map[string]string{EnvConfirmDelete: "maybe"}, EnvConfirmDelete},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnv(t)
				dir := t.TempDir()
				s, err := Init(dir)
				require.NoError(t, err)
				if tt.content != "" {
					require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte(tt.content), 0644))
				}
				for k, v := range tt.env {
					t.Setenv(k, v)
				}

				_, err = s.LoadConfig()
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	s, err := Init(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".tdconfig.yaml"), s.ConfigPath())
}
