package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults tests the behavior of Load without a config file.
//
// It verifies:
//   - Built-in defaults apply when no .npub.yml exists
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultDistTag, cfg.DistTag)
	assert.Equal(t, DefaultMessageTemplate, cfg.MessageTemplate)
	assert.False(t, cfg.NoColor)
}

// TestLoadConfigFile tests the behavior of Load with a .npub.yml present.
//
// It verifies:
//   - File values override the defaults
//   - Unset fields keep their defaults
func TestLoadConfigFile(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		dir := t.TempDir()
		content := "tag: next\nmessage_template: \"chore: release {{ .Version }}\"\nno_color: true\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "next", cfg.DistTag)
		assert.Equal(t, "chore: release {{ .Version }}", cfg.MessageTemplate)
		assert.True(t, cfg.NoColor)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("tag: beta\n"), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "beta", cfg.DistTag)
		assert.Equal(t, DefaultMessageTemplate, cfg.MessageTemplate)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("tag: [unclosed\n"), 0o644))

		_, err := Load(dir)
		assert.Error(t, err)
	})
}

// TestLoadDotEnv tests the behavior of Load with a .env file.
//
// It verifies:
//   - Variables from .env reach the process environment
func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NPUB_TEST_TOKEN=secret123\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("NPUB_TEST_TOKEN") })

	_, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret123", os.Getenv("NPUB_TEST_TOKEN"))
}

// TestRenderMessage tests the behavior of Config.RenderMessage.
//
// It verifies:
//   - The default template embeds the new version
//   - Custom templates and sprig functions render
//   - Broken templates fail
func TestRenderMessage(t *testing.T) {
	t.Run("default template", func(t *testing.T) {
		cfg := &Config{MessageTemplate: DefaultMessageTemplate}
		msg, err := cfg.RenderMessage("1.0.1")
		require.NoError(t, err)
		assert.Equal(t, "release version 1.0.1", msg)
	})

	t.Run("custom template", func(t *testing.T) {
		cfg := &Config{MessageTemplate: "chore: release {{ .Version }}"}
		msg, err := cfg.RenderMessage("2.0.0")
		require.NoError(t, err)
		assert.Equal(t, "chore: release 2.0.0", msg)
	})

	t.Run("sprig functions are available", func(t *testing.T) {
		cfg := &Config{MessageTemplate: `release {{ .Version | quote }}`}
		msg, err := cfg.RenderMessage("1.2.3")
		require.NoError(t, err)
		assert.Equal(t, `release "1.2.3"`, msg)
	})

	t.Run("broken template fails", func(t *testing.T) {
		cfg := &Config{MessageTemplate: "release {{ .Version"}
		_, err := cfg.RenderMessage("1.0.0")
		assert.Error(t, err)
	})
}
