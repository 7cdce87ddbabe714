package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultConfigName = "engine_config"
	SystemConfigDir   = "/etc/kanagawa"
	envPrefix         = "KANAGAWA"
)

type ServerConfig struct {
	// Host is the listen address of the status server; empty disables it
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type ControlConfig struct {
	Interval              time.Duration `mapstructure:"interval"`
	HighLoadThreshold     float64       `mapstructure:"high_load_threshold"`      // percent, exclusive
	HighLoadMinPercentile float64       `mapstructure:"high_load_min_percentile"` // rank of scaling_min_freq under high load
	LowLoadMaxPercentile  float64       `mapstructure:"low_load_max_percentile"`  // rank of scaling_max_freq under low load
	MaxTableEntries       int           `mapstructure:"max_table_entries"`
}

type SysfsConfig struct {
	ProcRoot    string `mapstructure:"proc_root"`
	CPUFreqRoot string `mapstructure:"cpufreq_root"`
	DryRun      bool   `mapstructure:"dry_run"`
}

type EngineConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Control ControlConfig `mapstructure:"control"`
	Sysfs   SysfsConfig   `mapstructure:"sysfs"`
}

var (
	engineCfg *EngineConfig
)

func GetConfig() *EngineConfig {
	return engineCfg
}

// flagKeys maps config keys to the cobra flags that may override them.
var flagKeys = map[string]string{
	"logging.level":    "log-level",
	"sysfs.dry_run":    "dry-run",
	"server.host":      "listen",
	"control.interval": "interval",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("control.interval", 5*time.Second)
	v.SetDefault("control.high_load_threshold", 40.0)
	v.SetDefault("control.high_load_min_percentile", 0.75)
	v.SetDefault("control.low_load_max_percentile", 0.50)
	v.SetDefault("control.max_table_entries", 100)
	v.SetDefault("sysfs.proc_root", "/proc")
	v.SetDefault("sysfs.cpufreq_root", "/sys/devices/system/cpu/cpufreq")
	v.SetDefault("sysfs.dry_run", false)
}

// InitEngineConfig loads the engine configuration. A missing config file is not an error: the
// defaults reproduce the built-in policy constants. flags may be nil.
func InitEngineConfig(configName string, configPath string, flags *pflag.FlagSet) (EngineConfig, error) {
	var cfg EngineConfig
	v := viper.New()
	setDefaults(v)
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = DefaultConfigName
	}
	v.AddConfigPath(SystemConfigDir)
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "read config")
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	engineCfg = &cfg
	return cfg, nil
}

// Validate rejects settings the control loop cannot run with.
func (cfg EngineConfig) Validate() error {
	c := cfg.Control
	switch {
	case c.Interval <= 0:
		return errors.Wrapf(domain.ErrInvalidConfig, "control.interval must be positive, got %s", c.Interval)
	case c.HighLoadThreshold < 0 || c.HighLoadThreshold > 100:
		return errors.Wrapf(domain.ErrInvalidConfig, "control.high_load_threshold must be within [0,100], got %v", c.HighLoadThreshold)
	case c.HighLoadMinPercentile <= 0 || c.HighLoadMinPercentile > 1:
		return errors.Wrapf(domain.ErrInvalidConfig, "control.high_load_min_percentile must be within (0,1], got %v", c.HighLoadMinPercentile)
	case c.LowLoadMaxPercentile <= 0 || c.LowLoadMaxPercentile > 1:
		return errors.Wrapf(domain.ErrInvalidConfig, "control.low_load_max_percentile must be within (0,1], got %v", c.LowLoadMaxPercentile)
	case c.MaxTableEntries <= 0:
		return errors.Wrapf(domain.ErrInvalidConfig, "control.max_table_entries must be positive, got %d", c.MaxTableEntries)
	case cfg.Sysfs.ProcRoot == "" || cfg.Sysfs.CPUFreqRoot == "":
		return errors.Wrap(domain.ErrInvalidConfig, "sysfs.proc_root and sysfs.cpufreq_root must be set")
	}
	return nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
