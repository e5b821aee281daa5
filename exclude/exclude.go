// Package exclude decides which filesystem entries a traversal should skip.
// It combines explicit skip paths (the caller's own file and its loader
// ancestry), caller-supplied glob patterns, and an optional ignore file in
// the scanned root.
package exclude

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreFileName is the gitignore-syntax file honored in the scanned root.
const IgnoreFileName = ".foldignore"

// MatcherOptions configures the exclusion matcher.
type MatcherOptions struct {
	// RootDir is the directory being aggregated.
	RootDir string
	// Patterns are doublestar globs matched against the path relative to
	// RootDir and against the entry's base name.
	Patterns []string
	// SkipPaths are absolute file paths that are always excluded.
	SkipPaths []string
}

// Matcher determines whether a path should be excluded from traversal.
// The decision is computed fresh per call and never cached.
type Matcher struct {
	rootDir    string
	patterns   []string
	skipPaths  map[string]struct{}
	ignoreFile gitignore.GitIgnore
}

// NewMatcher creates a matcher for one aggregation call. An ignore file at
// <RootDir>/.foldignore is honored when present.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:   options.RootDir,
		patterns:  options.Patterns,
		skipPaths: make(map[string]struct{}, len(options.SkipPaths)),
	}
	for _, path := range options.SkipPaths {
		matcher.skipPaths[filepath.Clean(path)] = struct{}{}
	}

	matcher.ignoreFile = loadIgnoreFile(filepath.Join(options.RootDir, IgnoreFileName), options.RootDir)

	return matcher
}

// ShouldSkip returns true if the given path should be excluded.
func (m *Matcher) ShouldSkip(absolutePath string) bool {
	if _, ok := m.skipPaths[filepath.Clean(absolutePath)]; ok {
		return true
	}
	if filepath.Base(absolutePath) == IgnoreFileName {
		return true
	}

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if m.matchesPatterns(relativePath) {
		return true
	}

	if m.ignoreFile != nil {
		isDir := false
		if info, err := os.Stat(absolutePath); err == nil {
			isDir = info.IsDir()
		}
		// Relative() does not require the file to exist on disk.
		match := m.ignoreFile.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	return false
}

// matchesPatterns checks the caller-supplied globs against the relative path
// and the base name. Malformed patterns are ignored rather than surfaced.
func (m *Matcher) matchesPatterns(relativePath string) bool {
	baseName := filepath.Base(relativePath)
	for _, pattern := range m.patterns {
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Uses io.Reader approach to ensure the file handle is properly closed on Windows.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
