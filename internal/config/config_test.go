package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir and clears
// overrides that may leak in from the developer's shell.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(PathEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"docs": "features"}, c.Nav.Aliases)
	assert.True(t, c.Scroll.Smooth)
	assert.Equal(t, 16*time.Millisecond, c.Scroll.FrameInterval)
	assert.InDelta(t, 0.35, c.Scroll.Easing, 1e-9)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "ligonsite", c.Trace.ServiceName)
	assert.Empty(t, c.Trace.Endpoint)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	doc := `
[nav]
initial = "examples"

[nav.aliases]
docs = "features"
install = "download"

[scroll]
smooth = false
frame_interval = "10ms"
easing = 0.5

[log]
level = "debug"
format = "json"
file = "/tmp/ligonsite.log"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "examples", c.Nav.Initial)
	assert.Equal(t, map[string]string{"docs": "features", "install": "download"}, c.Nav.Aliases)
	assert.False(t, c.Scroll.Smooth)
	assert.Equal(t, 10*time.Millisecond, c.Scroll.FrameInterval)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "/tmp/ligonsite.log", c.Log.File)
}

func TestLoad_PathFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[nav]\ninitial = \"download\"\n"), 0o644))
	t.Setenv(PathEnv, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "download", c.Nav.Initial)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LIGONSITE_SCROLL_SMOOTH", "false")
	t.Setenv("LIGONSITE_LOG_LEVEL", "debug")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	c, err := Load("")
	require.NoError(t, err)
	assert.False(t, c.Scroll.Smooth)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "localhost:4318", c.Trace.Endpoint)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[scroll]\neasing = 2.0\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "scroll.easing")
}

func TestValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	c.Log.Format = "yaml"
	assert.Error(t, c.Validate())

	c = Default()
	c.Scroll.FrameInterval = 0
	assert.Error(t, c.Validate())

	c = Default()
	c.Log.Level = "degub"
	assert.ErrorContains(t, c.Validate(), "log.level")

	for _, level := range []string{"debug", "info", "warn", "error"} {
		c = Default()
		c.Log.Level = level
		assert.NoError(t, c.Validate(), level)
	}
}
