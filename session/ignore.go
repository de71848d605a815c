package session

import (
	ignore "github.com/sabhiram/go-gitignore"
)

// excludeMatcher answers whether a path matches the configured
// gitignore-syntax exclude patterns. It matches single paths only; the
// session never walks the tree on its own.
type excludeMatcher struct {
	ignore *ignore.GitIgnore
}

func newExcludeMatcher(patterns []string) *excludeMatcher {
	m := &excludeMatcher{}
	if len(patterns) > 0 {
		m.ignore = ignore.CompileIgnoreLines(patterns...)
	}
	return m
}

func (m *excludeMatcher) matches(path string) bool {
	if m == nil || m.ignore == nil {
		return false
	}
	return m.ignore.MatchesPath(path)
}
