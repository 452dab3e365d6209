package checks

import (
	"context"
	"fmt"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/filter"
)

const (
	hooksApplyID      = "check-hooks-apply"
	uselessExcludesID = "check-useless-excludes"
)

// hooksApplyCheck flags hooks whose file filter matches nothing in the
// working tree: a declaration that never runs is a stale declaration.
type hooksApplyCheck struct{}

func (c *hooksApplyCheck) ID() string { return hooksApplyID }

func (c *hooksApplyCheck) Description() string {
	return "every declared hook applies to at least one file"
}

func (c *hooksApplyCheck) Run(ctx context.Context, cfg *config.Config, files []string) ([]Finding, error) {
	var findings []Finding
	for _, ref := range cfg.Hooks() {
		if ref.Repo.IsMeta() {
			continue
		}
		f, err := filter.Compile(ref.Hook.Files, ref.Hook.Exclude)
		if err != nil {
			return nil, err
		}
		if len(f.Apply(files)) == 0 {
			findings = append(findings, Finding{
				Check:   c.ID(),
				Hook:    ref.Hook.ID,
				Level:   LevelError,
				Message: "does not apply to any file in the working tree",
			})
		}
	}
	return findings, nil
}

// uselessExcludesCheck flags exclude patterns that remove nothing from the
// hook's include set.
type uselessExcludesCheck struct{}

func (c *uselessExcludesCheck) ID() string { return uselessExcludesID }

func (c *uselessExcludesCheck) Description() string {
	return "every exclude pattern excludes at least one included file"
}

func (c *uselessExcludesCheck) Run(ctx context.Context, cfg *config.Config, files []string) ([]Finding, error) {
	var findings []Finding
	for _, ref := range cfg.Hooks() {
		if ref.Repo.IsMeta() || ref.Hook.Exclude == "" {
			continue
		}
		f, err := filter.Compile(ref.Hook.Files, ref.Hook.Exclude)
		if err != nil {
			return nil, err
		}

		useless := true
		for _, path := range files {
			if f.Included(path) && f.Excluded(path) {
				useless = false
				break
			}
		}
		if useless {
			findings = append(findings, Finding{
				Check:   c.ID(),
				Hook:    ref.Hook.ID,
				Level:   LevelWarn,
				Message: fmt.Sprintf("exclude pattern %q excludes nothing", ref.Hook.Exclude),
			})
		}
	}
	return findings, nil
}
