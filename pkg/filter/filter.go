// Package filter applies a hook's include/exclude regular expressions to
// repository-relative paths.
package filter

import (
	"fmt"
	"regexp"
)

// Filter is a compiled include/exclude path filter. An empty include pattern
// matches every path; an empty exclude pattern excludes none.
type Filter struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// Compile builds a filter from a hook's files and exclude patterns
func Compile(include, exclude string) (*Filter, error) {
	f := &Filter{}

	if include != "" {
		re, err := regexp.Compile(include)
		if err != nil {
			return nil, fmt.Errorf("invalid files pattern %q: %w", include, err)
		}
		f.include = re
	}
	if exclude != "" {
		re, err := regexp.Compile(exclude)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", exclude, err)
		}
		f.exclude = re
	}
	return f, nil
}

// Match reports whether path passes the filter
func (f *Filter) Match(path string) bool {
	if f.include != nil && !f.include.MatchString(path) {
		return false
	}
	if f.exclude != nil && f.exclude.MatchString(path) {
		return false
	}
	return true
}

// Included reports whether path matches the include pattern, ignoring the
// exclude pattern
func (f *Filter) Included(path string) bool {
	return f.include == nil || f.include.MatchString(path)
}

// Excluded reports whether path is removed by the exclude pattern
func (f *Filter) Excluded(path string) bool {
	return f.exclude != nil && f.exclude.MatchString(path)
}

// Apply returns the paths that pass the filter, preserving input order
func (f *Filter) Apply(paths []string) []string {
	var matched []string
	for _, p := range paths {
		if f.Match(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
