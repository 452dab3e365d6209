package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the declaration file in canonical form",
	Long: `Fmt re-serializes the declaration file canonically: stable two-space
indentation, fields in declaration order, entries in execution order. The
document structure is unchanged.

With --check, no file is written; the command fails if the file is not
already canonical.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		original, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", configPath, err)
		}

		cfg, err := config.Parse(original)
		if err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		canonical, err := config.Marshal(cfg)
		if err != nil {
			return err
		}

		if bytes.Equal(original, canonical) {
			fmt.Printf("%s: already canonical\n", configPath)
			return nil
		}

		if fmtCheck {
			return fmt.Errorf("%s is not in canonical form", configPath)
		}

		if err := os.WriteFile(configPath, canonical, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configPath, err)
		}
		fmt.Printf("%s: rewritten\n", configPath)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false,
		"Fail instead of rewriting when the file is not canonical")
	rootCmd.AddCommand(fmtCmd)
}
