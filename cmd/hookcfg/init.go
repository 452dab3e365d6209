package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the builtin hook declaration file",
	Long: `Init writes the builtin declaration set to the config path:
pyupgrade, isort, and black scoped to the brian2 source tree, plus the
runner's two meta self-checks. An existing file is only overwritten with
--force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !initForce {
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat %s: %w", configPath, err)
			}
		}

		if err := os.WriteFile(configPath, config.DefaultYAML(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configPath, err)
		}
		fmt.Printf("%s: written\n", configPath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
