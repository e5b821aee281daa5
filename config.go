package dirfold

import (
	"strings"

	"github.com/dirfold/dirfold/caller"
	"github.com/dirfold/dirfold/loader"
	"github.com/dirfold/dirfold/tree"
)

// DefaultIndexName is the basename that marks a unit as its directory's index.
const DefaultIndexName = "index"

// ExcludeOptions toggles the individual exclusion rules. Pointer booleans
// distinguish "unset" (take the default, true) from an explicit false.
type ExcludeOptions struct {
	// Files are doublestar patterns naming entries to skip.
	Files []string
	// Self skips the file that invoked the aggregator. Default true.
	Self *bool
	// Parents skips every file in the target module's loader ancestry.
	// Default true.
	Parents *bool
	// Siblings folds files governed by a same-extension index file into the
	// directory node instead of giving them standalone keys. Default true.
	Siblings *bool
	// Children lets an index file's merged object absorb already-stored
	// nested directory entries. Default true.
	Children *bool
}

// ExportContext is passed to a custom export callback for each root entry.
type ExportContext struct {
	// Name is the final (safe, unique) export name.
	Name string
	// Exports is the value stored under the original root key.
	Exports any
	// Mapping is the full aggregate result.
	Mapping *tree.Mapping
	// Target is the module whose export surface is being written.
	Target *caller.Module
}

// Options configures a single aggregation call. The zero value (or nil) means
// all defaults.
type Options struct {
	// Async is reserved; aggregation is synchronous regardless.
	Async *bool
	// Recurse descends into subdirectories. Default true.
	Recurse *bool
	// IndexProp keeps index files under their own key instead of merging
	// them onto the containing node. Default false.
	IndexProp bool
	// IndexName is the basename of index files, trimmed of surrounding
	// whitespace. Default "index".
	IndexName string
	// Export mirrors root entries onto the target module's export surface.
	Export bool
	// ExportWith replaces the default export assignment. Implies Export.
	ExportWith func(ExportContext)
	// Resolve is invoked with each record before it is finalized and may
	// overwrite any field, notably Exports.
	Resolve func(*Record)
	// Safe rewrites exported names that collide with Go reserved words.
	Safe bool
	// Loader overrides the unit loader. Default: cached built-in registry.
	Loader loader.Loader
	// Exclude toggles the exclusion rules.
	Exclude ExcludeOptions
}

// config is the fully-populated form of Options. Every field carries a value
// after normalize; nothing downstream deals with defaults.
type config struct {
	async           bool
	recurse         bool
	indexProp       bool
	indexName       string
	export          bool
	exportWith      func(ExportContext)
	resolve         func(*Record)
	safe            bool
	loader          loader.Loader
	excludeFiles    []string
	excludeSelf     bool
	excludeParents  bool
	excludeSiblings bool
	excludeChildren bool
}

// normalize merges caller options with the defaults. It never fails; a nil
// Options behaves like an empty one.
func normalize(opts *Options) config {
	if opts == nil {
		opts = &Options{}
	}

	cfg := config{
		async:           boolOr(opts.Async, true),
		recurse:         boolOr(opts.Recurse, true),
		indexProp:       opts.IndexProp,
		indexName:       strings.TrimSpace(opts.IndexName),
		export:          opts.Export || opts.ExportWith != nil,
		exportWith:      opts.ExportWith,
		resolve:         opts.Resolve,
		safe:            opts.Safe,
		loader:          opts.Loader,
		excludeFiles:    opts.Exclude.Files,
		excludeSelf:     boolOr(opts.Exclude.Self, true),
		excludeParents:  boolOr(opts.Exclude.Parents, true),
		excludeSiblings: boolOr(opts.Exclude.Siblings, true),
		excludeChildren: boolOr(opts.Exclude.Children, true),
	}

	if cfg.indexName == "" {
		cfg.indexName = DefaultIndexName
	}
	if cfg.loader == nil {
		cfg.loader = loader.Default()
	}
	return cfg
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// Bool is a convenience for populating the pointer-boolean option fields.
func Bool(v bool) *bool {
	return &v
}
