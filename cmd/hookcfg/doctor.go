package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Probe the environment the declaration file depends on",
	Long: `Doctor checks that the tools this declaration file relies on are
available: git for tracked-file listings, and the Docker daemon when any
hook declares a container language. A missing declaration file is fine;
the probes then cover the baseline environment only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		if _, err := os.Stat(configPath); err == nil {
			cfg, err = loadConfig()
			if err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat %s: %w", configPath, err)
		}

		if err := doctor.NewChecker(cfg).Run(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("environment ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
