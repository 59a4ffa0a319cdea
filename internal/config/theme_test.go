package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/adflow/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "adflow-theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`), 0o644))
	t.Setenv("ADFLOW_THEME_FILE", themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.Edit)
	// Untouched slots keep the preset value
	assert.Equal(t, colors.Default().Delete, cfg.ColorScheme.Delete)
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ADFLOW_THEME_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultColorScheme(), cfg.ColorScheme)
}

func TestPresetFillsGaps(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	mono := MonochromeColorScheme()
	assert.Equal(t, "#123456", scheme.Accent)
	assert.Equal(t, mono.CardBorder, scheme.CardBorder)
	assert.Equal(t, mono.ErrorFg, scheme.ErrorFg)
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	assert.Equal(t, colors.Default(), colors.GetPreset("neon"))
}
