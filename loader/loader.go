// Package loader turns unit files into values. A Registry dispatches on file
// extension to a decode function; Cached wraps any Loader with a per-path
// cache so repeated loads of the same file are idempotent within a process.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader loads one unit file into a value. A nil value with a nil error is
// the absent sentinel: the unit deliberately exports nothing.
type Loader interface {
	// Load reads and decodes the file at absolutePath.
	Load(absolutePath string) (any, error)
	// Supports reports whether this loader claims the given file. Files no
	// loader claims are skipped by traversal rather than failed.
	Supports(path string) bool
}

// DecodeFunc decodes raw file content into a value. path is provided for
// error positioning only.
type DecodeFunc func(data []byte, path string) (any, error)

// Registry maps file extensions (without dot, lowercased) to decode functions.
type Registry struct {
	byExt map[string]DecodeFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]DecodeFunc)}
}

// Register adds or replaces the decode function for an extension.
func (r *Registry) Register(ext string, fn DecodeFunc) {
	r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))] = fn
}

// Supports reports whether a decode function is registered for the file's
// extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.byExt[extensionOf(path)]
	return ok
}

// Load reads the file and decodes it with the registered function. An empty
// (or whitespace-only) document decodes to the absent sentinel; an empty
// object is a present empty map, in every format.
func (r *Registry) Load(absolutePath string) (any, error) {
	fn, ok := r.byExt[extensionOf(absolutePath)]
	if !ok {
		return nil, fmt.Errorf("no loader registered for %s", absolutePath)
	}

	data, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("reading unit %s: %w", absolutePath, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	value, err := fn(data, absolutePath)
	if err != nil {
		return nil, fmt.Errorf("decoding unit %s: %w", absolutePath, err)
	}
	return value, nil
}

func extensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
