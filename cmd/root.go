package cmd

import (
	"os"
	"time"

	"github.com/Gthulhu/kanagawa/config"
	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	flagConfig    = "config"
	flagConfigDir = "config-dir"
	flagLogLevel  = "log-level"
	flagDryRun    = "dry-run"
	flagListen    = "listen"
	flagInterval  = "interval"
)

// NewRootCmd builds the kanagawa command tree. Without a subcommand it runs the engine.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kanagawa",
		Short:         "Kanagawa Engine, a userspace CPU frequency governor",
		Long:          "Kanagawa Engine samples aggregate CPU utilization and switches every cpufreq policy between a high-load and a low-load frequency range.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEngine,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, config.DefaultConfigName, "Config file name, without extension")
	flags.String(flagConfigDir, "", "Directory searched for the config file before "+config.SystemConfigDir)
	flags.String(flagLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	flags.Bool(flagDryRun, false, "Log frequency writes instead of performing them")
	flags.String(flagListen, "", "Listen address of the status server, empty disables it")
	flags.Duration(flagInterval, 5*time.Second, "Control loop interval")

	rootCmd.AddCommand(
		newRunCmd(),
		newStatusCmd(),
		newApplyCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the engine configuration with the command's flags layered on top and
// initializes the process logger.
func loadConfig(cmd *cobra.Command) (config.EngineConfig, error) {
	flags := cmd.Flags()
	configName, _ := flags.GetString(flagConfig)
	configDir, _ := flags.GetString(flagConfigDir)
	cfg, err := config.InitEngineConfig(configName, configDir, flags)
	if err != nil {
		return cfg, err
	}
	logger.InitLogger(cfg.Logging.Level)
	return cfg, nil
}
