package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/checks"
	"github.com/oleksii-leonov/hookcfg/pkg/gitfiles"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the meta self-checks against the working tree",
	Long: `Check runs the self-checks the declaration file requests in its meta
block (all of them when no meta block is declared):

  check-hooks-apply       every hook matches at least one tracked file
  check-useless-excludes  every exclude pattern actually excludes something

Error-level findings fail the command; warnings do not.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		files, err := gitfiles.List(cmd.Context(), cwd)
		if err != nil {
			return err
		}

		runner, err := checks.NewRunner(cfg)
		if err != nil {
			return err
		}
		findings, err := runner.Run(cmd.Context(), cfg, files)
		if err != nil {
			return err
		}

		if len(findings) == 0 {
			fmt.Printf("%s: all checks passed\n", configPath)
			return nil
		}

		fmt.Print(checks.Summarize(findings))
		if checks.HasErrors(findings) {
			return fmt.Errorf("checks failed for %s", configPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
