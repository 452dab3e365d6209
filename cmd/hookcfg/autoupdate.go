package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/resolver"
)

var autoupdateDryRun bool

var autoupdateCmd = &cobra.Command{
	Use:   "autoupdate",
	Short: "Update pinned revisions to the latest tags",
	Long: `Autoupdate resolves the latest tag of every pinned repo on
github.com and rewrites the revisions in the declaration file. Repos hosted
elsewhere are skipped. Set GITHUB_TOKEN (or GH_TOKEN) to lift the anonymous
API rate limit.

With --dry-run, the planned updates are printed and nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		r := resolver.New(cmd.Context(), resolver.TokenFromEnv())
		updates, err := r.Plan(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		if len(updates) == 0 {
			fmt.Printf("%s: all revisions up to date\n", configPath)
			return nil
		}

		for _, u := range updates {
			fmt.Printf("%s: %s -> %s\n", u.RepoURL, u.OldRev, u.NewRev)
		}
		if autoupdateDryRun {
			return nil
		}

		resolver.Apply(cfg, updates)
		if err := config.Save(configPath, cfg); err != nil {
			return err
		}
		fmt.Printf("%s: %d revision(s) updated\n", configPath, len(updates))
		return nil
	},
}

func init() {
	autoupdateCmd.Flags().BoolVar(&autoupdateDryRun, "dry-run", false,
		"Print planned updates without writing the file")
	rootCmd.AddCommand(autoupdateCmd)
}
