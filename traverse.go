package dirfold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirfold/dirfold/classify"
	"github.com/dirfold/dirfold/exclude"
)

// Record is produced once per loaded unit and consumed exactly once by the
// aggregator. A Resolve callback may mutate any field before the record is
// finalized.
type Record struct {
	// Props are the directory-name segments leading to the unit, excluding
	// the unit's own name.
	Props []string
	// Exports is the loaded value.
	Exports any
	// Filename is the base name with extension.
	Filename string
	// Extname is the extension including the leading dot.
	Extname string
	// Basename is the base name without extension.
	Basename string
	// Path is the absolute path of the unit file.
	Path string
}

// traverse walks dirPath and returns one record per loaded unit, in
// filesystem listing order. A dirPath that is itself a file is treated as a
// one-item traversal over that file. An unreadable root directory is an
// error; nested entries that vanish mid-scan or are neither file nor
// directory are skipped silently.
func traverse(dirPath string, cfg *config, matcher *exclude.Matcher, propsPrefix []string) ([]*Record, error) {
	var paths []string
	switch {
	case classify.Is(dirPath, classify.Directory):
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			if len(propsPrefix) == 0 {
				return nil, fmt.Errorf("reading directory %s: %w", dirPath, err)
			}
			// Nested directory vanished between being listed and being read.
			return nil, nil
		}
		for _, entry := range entries {
			paths = append(paths, filepath.Join(dirPath, entry.Name()))
		}
	case classify.Is(dirPath, classify.File):
		paths = append(paths, dirPath)
	default:
		return nil, nil
	}

	var records []*Record
	for _, path := range paths {
		if matcher.ShouldSkip(path) {
			continue
		}

		if classify.Is(path, classify.Directory) {
			if !cfg.recurse {
				continue
			}
			childProps := append(append([]string{}, propsPrefix...), filepath.Base(path))
			children, err := traverse(path, cfg, matcher, childProps)
			if err != nil {
				return nil, err
			}
			records = append(records, children...)
			continue
		}
		if !classify.Is(path, classify.File) {
			continue
		}
		if !cfg.loader.Supports(path) {
			continue
		}

		exports, err := cfg.loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnitLoad, path, err)
		}
		if classify.Is(exports, classify.Absent) {
			// The unit opted out of aggregation by exporting nothing.
			continue
		}

		filename := filepath.Base(path)
		extension := filepath.Ext(filename)
		record := &Record{
			Props:    append([]string{}, propsPrefix...),
			Exports:  exports,
			Filename: filename,
			Extname:  extension,
			Basename: strings.TrimSuffix(filename, extension),
			Path:     path,
		}
		if cfg.resolve != nil {
			cfg.resolve(record)
		}
		records = append(records, record)
	}
	return records, nil
}
