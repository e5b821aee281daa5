// Package dirfold scans a directory tree, loads each unit file found there,
// and assembles the loaded values into a single nested mapping whose shape
// mirrors the directory hierarchy.
//
// The target of an aggregation may be absent (the directory containing the
// calling file), a *caller.Module handle, or a path string resolved relative
// to the calling file. Units are loaded through a pluggable loader; the
// built-in one decodes JSON, YAML, TOML and CUE documents.
package dirfold

import (
	"path/filepath"

	"github.com/dirfold/dirfold/caller"
	"github.com/dirfold/dirfold/classify"
	"github.com/dirfold/dirfold/exclude"
	"github.com/dirfold/dirfold/tree"
)

// Aggregate walks the resolved target and folds every loaded unit into one
// mapping. Traversal is synchronous: the mapping is complete when Aggregate
// returns, and it is owned exclusively by this call. Any error aborts the
// whole call; no partial mapping is returned.
func Aggregate(target any, opts *Options) (*tree.Mapping, error) {
	callerFile, _ := caller.File(1)
	return aggregateFrom(target, opts, callerFile)
}

// aggregateFrom is the entry point with the caller's identity made explicit,
// for callers (and tests) that cannot rely on stack discovery.
func aggregateFrom(target any, opts *Options, callerFile string) (*tree.Mapping, error) {
	cfg := normalize(opts)

	rootPath, err := resolveTarget(target, callerFile)
	if err != nil {
		return nil, err
	}

	var skipPaths []string
	if cfg.excludeSelf && callerFile != "" {
		skipPaths = append(skipPaths, callerFile)
	}
	// Exclusion is duck-typed like resolution: any handle with a Filename
	// gets its own file excluded, independent of config, and a handle that
	// also exposes its loader ancestry gets that excluded too.
	if handle, ok := target.(moduleHandle); ok {
		skipPaths = append(skipPaths, handle.Filename())
		if cfg.excludeParents {
			if chained, ok := target.(interface{ Chain() []string }); ok {
				skipPaths = append(skipPaths, chained.Chain()...)
			}
		}
	}

	matcher := exclude.NewMatcher(exclude.MatcherOptions{
		RootDir:   rootDirOf(rootPath),
		Patterns:  cfg.excludeFiles,
		SkipPaths: skipPaths,
	})

	records, err := traverse(rootPath, &cfg, matcher, nil)
	if err != nil {
		return nil, err
	}

	mapping := aggregate(records, &cfg)
	// Only the concrete module type carries a writable export surface.
	targetModule, _ := target.(*caller.Module)
	exportRoot(mapping, targetModule, &cfg)
	return mapping, nil
}

// rootDirOf returns the directory the exclusion matcher anchors to: the
// target itself, or its parent when the target is a lone file.
func rootDirOf(rootPath string) string {
	if classify.Is(rootPath, classify.File) {
		return filepath.Dir(rootPath)
	}
	return rootPath
}
