package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/testutil"
	"github.com/Norgate-AV/winauto/internal/timeouts"
)

func TestLoad_Defaults(t *testing.T) {
	// No config file in the default location
	t.Setenv("LOCALAPPDATA", t.TempDir())

	cfg, err := Load(New(""))
	require.NoError(t, err)

	assert.Equal(t, timeouts.ExecuteTimeout, cfg.ExecuteTimeout)
	assert.Equal(t, timeouts.CharInputDelay, cfg.CharDelay)
	assert.Equal(t, time.Duration(0), cfg.FindTimeout)
	assert.Equal(t, timeouts.FindRetryInterval, cfg.FindInterval)
	assert.Equal(t, timeouts.ClassNameMaxLength, cfg.ClassNameMax)
	assert.Equal(t, logger.DefaultLogMaxSize, cfg.Log.MaxSize)
	assert.Equal(t, logger.DefaultLogMaxBackups, cfg.Log.MaxBackups)
	assert.Equal(t, logger.DefaultLogMaxAge, cfg.Log.MaxAge)
	assert.True(t, cfg.Log.Compress)
	assert.Empty(t, cfg.Log.LogDir)
}

func TestLoad_File(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	path := testutil.CreateConfigFile(t, dir, `
execute_timeout: 3s
char_delay: 25ms
find_timeout: 2s
find_interval: 50ms
class_name_max: 256
log:
  dir: `+filepath.ToSlash(dir)+`
  max_size: 5
  compress: false
`)

	cfg, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.ExecuteTimeout)
	assert.Equal(t, 25*time.Millisecond, cfg.CharDelay)
	assert.Equal(t, 2*time.Second, cfg.FindTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.FindInterval)
	assert.Equal(t, 256, cfg.ClassNameMax)
	assert.Equal(t, filepath.Clean(dir), cfg.Log.LogDir)
	assert.Equal(t, 5, cfg.Log.MaxSize)
	assert.False(t, cfg.Log.Compress)
}

func TestLoad_DefaultLocation(t *testing.T) {
	localAppData := t.TempDir()
	t.Setenv("LOCALAPPDATA", localAppData)

	dir := filepath.Join(localAppData, "winauto")
	require.NoError(t, ensureDir(dir))
	testutil.CreateConfigFile(t, dir, "char_delay: 1ms\n")

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, cfg.CharDelay)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	path := testutil.CreateConfigFile(t, dir, "execute_timeout: 3s\n")

	t.Setenv("WINAUTO_EXECUTE_TIMEOUT", "7s")
	t.Setenv("WINAUTO_LOG_MAX_AGE", "9")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.ExecuteTimeout)
	assert.Equal(t, 9, cfg.Log.MaxAge)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestResolve_SetOverridesDefaults(t *testing.T) {
	t.Setenv("LOCALAPPDATA", t.TempDir())

	v := New("")
	v.Set("find_timeout", 5*time.Second)

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.FindTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			ExecuteTimeout: time.Second,
			CharDelay:      time.Millisecond,
			FindInterval:   time.Millisecond,
			ClassNameMax:   512,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero execute timeout", func(c *Config) { c.ExecuteTimeout = 0 }, "execute_timeout"},
		{"negative char delay", func(c *Config) { c.CharDelay = -1 }, "char_delay"},
		{"negative find timeout", func(c *Config) { c.FindTimeout = -1 }, "find_timeout"},
		{"negative find interval", func(c *Config) { c.FindInterval = -1 }, "find_interval"},
		{"zero class name buffer", func(c *Config) { c.ClassNameMax = 0 }, "class_name_max"},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
