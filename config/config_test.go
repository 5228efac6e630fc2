package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/edgeposter/fonts"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edgeposter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  addr: "127.0.0.1:9000"
render:
  format: pdf
  fonts:
    title: ./fonts/NotoSansSC-Bold.otf
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "pdf", cfg.Render.Format)
	assert.Equal(t, 92, cfg.Render.JPEGQuality)
	assert.Equal(t, ".", cfg.Render.OutputDir)
	assert.Equal(t, "./fonts/NotoSansSC-Bold.otf", cfg.Render.Fonts.Title)
	assert.Empty(t, cfg.Render.Fonts.Body)
	assert.Equal(t, fonts.SystemCJK, cfg.Render.Fonts.System)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadSystemFontsCanBeDisabled(t *testing.T) {
	cfg, err := Load(writeFile(t, "render:\n  fonts:\n    system: \"\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Render.Fonts.System)

	cfg, err = Load(writeFile(t, "render:\n  fonts:\n    system: \"Noto Serif CJK SC\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Noto Serif CJK SC", cfg.Render.Fonts.System)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		yaml  string
		field string
	}{
		"format":  {"render:\n  format: gif\n", "render.format"},
		"quality": {"render:\n  jpeg_quality: 0\n", "render.jpeg_quality"},
		"level":   {"log:\n  level: loud\n", "log.level"},
		"addr":    {"server:\n  addr: nowhere\n", "server.addr"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeFile(t, "server: [unclosed\n"))
	assert.Error(t, err)
}

func TestApplyEnvPort(t *testing.T) {
	env := map[string]string{"PORT": "3000"}
	getenv := func(k string) string { return env[k] }

	cfg := Default()
	cfg.ApplyEnv(getenv)
	assert.Equal(t, ":3000", cfg.Server.Addr)

	cfg.Server.Addr = "0.0.0.0:8080"
	cfg.ApplyEnv(getenv)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr)

	cfg.ApplyEnv(func(string) string { return "" })
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr)
}
