package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleksii-leonov/hookcfg/pkg/filter"
	"github.com/oleksii-leonov/hookcfg/pkg/gitfiles"
)

var listShowFiles bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the declared hooks in execution order",
	Long: `List renders the declaration file: each repo with its pinned
revision and hooks, including arguments and file filters.

With --files, the working tree is listed and each hook is shown with the
paths its filter currently selects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var files []string
		if listShowFiles {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}
			files, err = gitfiles.List(cmd.Context(), cwd)
			if err != nil {
				return err
			}
		}

		for _, repo := range cfg.Repos {
			if repo.Rev != "" {
				fmt.Printf("%s @ %s\n", repo.Repo, repo.Rev)
			} else {
				fmt.Printf("%s\n", repo.Repo)
			}
			for _, hook := range repo.Hooks {
				line := "  - " + hook.ID
				if len(hook.Args) > 0 {
					line += " " + strings.Join(hook.Args, " ")
				}
				fmt.Println(line)
				if hook.Files != "" {
					fmt.Printf("      files:   %s\n", hook.Files)
				}
				if hook.Exclude != "" {
					fmt.Printf("      exclude: %s\n", hook.Exclude)
				}
				if listShowFiles && !repo.IsMeta() {
					f, err := filter.Compile(hook.Files, hook.Exclude)
					if err != nil {
						return err
					}
					matched := f.Apply(files)
					fmt.Printf("      matches: %d file(s)\n", len(matched))
					for _, path := range matched {
						fmt.Printf("        %s\n", path)
					}
				}
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listShowFiles, "files", false,
		"Also list the working-tree files each hook applies to")
	rootCmd.AddCommand(listCmd)
}
