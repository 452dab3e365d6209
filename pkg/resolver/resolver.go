// Package resolver resolves pinned revisions against the hook sources'
// GitHub tags, powering autoupdate.
package resolver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/oleksii-leonov/hookcfg/pkg/config"
	"github.com/oleksii-leonov/hookcfg/pkg/log"
)

// Update describes a revision change for one repo block
type Update struct {
	RepoURL string
	OldRev  string
	NewRev  string
}

// Resolver queries hook source repositories for their latest tags
type Resolver struct {
	client *github.Client
}

// New creates a resolver. A non-empty token authenticates API requests and
// lifts the anonymous rate limit.
func New(ctx context.Context, token string) *Resolver {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}
	return &Resolver{client: github.NewClient(hc)}
}

// NewWithHTTPClient creates a resolver over a caller-supplied transport
func NewWithHTTPClient(hc *http.Client) *Resolver {
	return &Resolver{client: github.NewClient(hc)}
}

// TokenFromEnv returns the GitHub token from GITHUB_TOKEN or GH_TOKEN
func TokenFromEnv() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GH_TOKEN")
}

// SplitRepoURL extracts owner and name from a github.com repository URL
func SplitRepoURL(raw string) (owner, name string, ok bool) {
	trimmed := strings.TrimPrefix(raw, "https://github.com/")
	if trimmed == raw {
		return "", "", false
	}
	trimmed = strings.TrimSuffix(strings.TrimSuffix(trimmed, "/"), ".git")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// LatestTag returns the highest version tag of the given repository. Tags
// that don't parse as dotted versions are ignored; when none parse, the
// first tag reported by the API wins.
func (r *Resolver) LatestTag(ctx context.Context, owner, name string) (string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var all []string
	for {
		tags, resp, err := r.client.Repositories.ListTags(ctx, owner, name, opts)
		if err != nil {
			return "", fmt.Errorf("failed to list tags for %s/%s: %w", owner, name, err)
		}
		for _, tag := range tags {
			if tag.GetName() != "" {
				all = append(all, tag.GetName())
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if len(all) == 0 {
		return "", fmt.Errorf("repository %s/%s has no tags", owner, name)
	}

	best := ""
	for _, tag := range all {
		if best == "" || compareVersions(tag, best) > 0 {
			best = tag
		}
	}
	if _, ok := parseVersion(best); !ok {
		// No tag parsed as a version; trust the API's ordering
		return all[0], nil
	}
	return best, nil
}

// Plan computes the revision updates for every pinned repo in cfg. Repos
// hosted outside github.com are skipped with a warning. Up-to-date repos
// produce no update.
func (r *Resolver) Plan(ctx context.Context, cfg *config.Config) ([]Update, error) {
	var updates []Update
	for i := range cfg.Repos {
		repo := &cfg.Repos[i]
		if !repo.IsPinned() {
			continue
		}

		owner, name, ok := SplitRepoURL(repo.Repo)
		if !ok {
			log.Warn("skipping repo not hosted on github.com", "repo", repo.Repo)
			continue
		}

		latest, err := r.LatestTag(ctx, owner, name)
		if err != nil {
			return nil, err
		}
		if latest == repo.Rev {
			log.Debug("repo already at latest tag", "repo", repo.Repo, "rev", repo.Rev)
			continue
		}

		log.Info("revision update available", "repo", repo.Repo, "old", repo.Rev, "new", latest)
		updates = append(updates, Update{RepoURL: repo.Repo, OldRev: repo.Rev, NewRev: latest})
	}
	return updates, nil
}

// Apply rewrites the revisions of cfg in place according to updates
func Apply(cfg *config.Config, updates []Update) {
	for _, u := range updates {
		if repo := cfg.FindRepo(u.RepoURL); repo != nil {
			repo.Rev = u.NewRev
		}
	}
}

// parseVersion parses a dotted version tag, tolerating a leading "v"
func parseVersion(tag string) ([]int, bool) {
	trimmed := strings.TrimPrefix(tag, "v")
	parts := strings.Split(trimmed, ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, len(nums) > 0
}

// compareVersions orders two tags. Parsable versions sort above unparsable
// tags; two unparsable tags compare equal.
func compareVersions(a, b string) int {
	va, okA := parseVersion(a)
	vb, okB := parseVersion(b)
	switch {
	case okA && !okB:
		return 1
	case !okA && okB:
		return -1
	case !okA && !okB:
		return 0
	}

	for i := 0; i < len(va) || i < len(vb); i++ {
		na, nb := 0, 0
		if i < len(va) {
			na = va[i]
		}
		if i < len(vb) {
			nb = vb[i]
		}
		if na != nb {
			if na > nb {
				return 1
			}
			return -1
		}
	}
	return 0
}
