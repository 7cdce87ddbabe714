package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, name+".toml"), []byte(content), 0644)
	require.NoError(t, err, "failed to write config file")
	return dir
}

func TestInitEngineConfigDefaults(t *testing.T) {
	cfg, err := InitEngineConfig("absent_config", t.TempDir(), nil)
	require.NoError(t, err, "a missing config file should fall back to defaults")

	assert.Equal(t, 5*time.Second, cfg.Control.Interval)
	assert.Equal(t, 40.0, cfg.Control.HighLoadThreshold)
	assert.Equal(t, 0.75, cfg.Control.HighLoadMinPercentile)
	assert.Equal(t, 0.50, cfg.Control.LowLoadMaxPercentile)
	assert.Equal(t, 100, cfg.Control.MaxTableEntries)
	assert.Equal(t, "/proc", cfg.Sysfs.ProcRoot)
	assert.Equal(t, "/sys/devices/system/cpu/cpufreq", cfg.Sysfs.CPUFreqRoot)
	assert.False(t, cfg.Sysfs.DryRun)
	assert.Empty(t, cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NotNil(t, GetConfig())
	assert.Equal(t, cfg, *GetConfig())
}

func TestInitEngineConfigFromFile(t *testing.T) {
	dir := writeConfig(t, "engine_config.test", `
[server]
host = ":9100"

[control]
interval = "2s"
high_load_threshold = 60
max_table_entries = 32

[sysfs]
cpufreq_root = "/tmp/cpufreq"
dry_run = true
`)
	cfg, err := InitEngineConfig("engine_config.test", dir, nil)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Host)
	assert.Equal(t, 2*time.Second, cfg.Control.Interval)
	assert.Equal(t, 60.0, cfg.Control.HighLoadThreshold)
	assert.Equal(t, 32, cfg.Control.MaxTableEntries)
	assert.Equal(t, 0.75, cfg.Control.HighLoadMinPercentile, "unset keys keep their defaults")
	assert.Equal(t, "/tmp/cpufreq", cfg.Sysfs.CPUFreqRoot)
	assert.True(t, cfg.Sysfs.DryRun)
}

func TestInitEngineConfigEnvOverride(t *testing.T) {
	t.Setenv("KANAGAWA_CONTROL_HIGH_LOAD_THRESHOLD", "55")
	t.Setenv("KANAGAWA_LOGGING_LEVEL", "debug")

	cfg, err := InitEngineConfig("absent_config", t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, 55.0, cfg.Control.HighLoadThreshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestInitEngineConfigFlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Bool("dry-run", false, "")
	flags.Duration("interval", 5*time.Second, "")
	require.NoError(t, flags.Parse([]string{"--log-level=warn", "--dry-run", "--interval=1s"}))

	cfg, err := InitEngineConfig("absent_config", t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Sysfs.DryRun)
	assert.Equal(t, time.Second, cfg.Control.Interval)
}

func TestInitEngineConfigInvalid(t *testing.T) {
	dir := writeConfig(t, "engine_config.bad", `
[control]
low_load_max_percentile = 1.5
`)
	_, err := InitEngineConfig("engine_config.bad", dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestEngineConfigValidate(t *testing.T) {
	valid := EngineConfig{
		Control: ControlConfig{
			Interval:              5 * time.Second,
			HighLoadThreshold:     40,
			HighLoadMinPercentile: 0.75,
			LowLoadMaxPercentile:  0.5,
			MaxTableEntries:       100,
		},
		Sysfs: SysfsConfig{ProcRoot: "/proc", CPUFreqRoot: "/sys/devices/system/cpu/cpufreq"},
	}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(c *EngineConfig){
		"zero interval":       func(c *EngineConfig) { c.Control.Interval = 0 },
		"negative threshold":  func(c *EngineConfig) { c.Control.HighLoadThreshold = -1 },
		"threshold above 100": func(c *EngineConfig) { c.Control.HighLoadThreshold = 101 },
		"zero high rank":      func(c *EngineConfig) { c.Control.HighLoadMinPercentile = 0 },
		"low rank above one":  func(c *EngineConfig) { c.Control.LowLoadMaxPercentile = 1.01 },
		"zero table cap":      func(c *EngineConfig) { c.Control.MaxTableEntries = 0 },
		"empty proc root":     func(c *EngineConfig) { c.Sysfs.ProcRoot = "" },
	} {
		cfg := valid
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig, name)
	}
}
