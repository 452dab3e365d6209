package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the hook declaration file",
	Long: `Validate parses the declaration file strictly (unknown fields are
rejected) and checks its invariants: pinned repos carry a revision, the meta
repo carries none, hook ids are unique within a repo block, and every file
filter compiles as a regular expression.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", configPath, err)
		}

		cfg, err := config.ParseStrict(data)
		if err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		fmt.Printf("%s: ok (%d repos, %d hooks)\n", configPath, len(cfg.Repos), len(cfg.Hooks()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
