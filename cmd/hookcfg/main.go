package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/log"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "hookcfg",
	Short: "hookcfg manages pre-commit hook declaration files.",
	Long: `hookcfg parses, validates, formats, and updates the hook declaration
file consumed by pre-commit-style runners (.pre-commit-config.yaml): which
tools run, at which pinned revisions, against which files.

It never executes the declared hooks; that is the runner's job.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(log.Config{
			Level:  log.Level(logLevel),
			Format: logFormat,
		})
	},
}

// loadConfig reads the declaration file selected by --config
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName,
		"Path to the hook declaration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console",
		"Log format: console or json")
}

func main() {
	defer func() { _ = log.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
