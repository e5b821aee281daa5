package dirfold

import (
	"fmt"
	"path/filepath"

	"github.com/dirfold/dirfold/classify"
)

// moduleHandle is the duck-typed surface a caller-identity target exposes.
type moduleHandle interface {
	Filename() string
	Exports() map[string]any
}

// resolveTarget turns a caller-relative target into an absolute path.
// An absent target resolves to the directory containing the caller's file; a
// module handle resolves to the directory containing its own file; a
// non-empty string resolves relative to the caller's directory and must name
// an existing file or directory.
func resolveTarget(target any, callerFile string) (string, error) {
	callerDir := filepath.Dir(callerFile)

	if classify.Is(target, classify.Absent) {
		return callerDir, nil
	}
	if classify.Is(target, classify.Module) {
		return filepath.Dir(target.(moduleHandle).Filename()), nil
	}

	path, ok := target.(string)
	if !ok || path == "" {
		return "", fmt.Errorf("%w: unsupported target %T", ErrTargetNotFound, target)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(callerDir, path)
	}
	if !classify.Is(path, classify.File) && !classify.Is(path, classify.Directory) {
		return "", fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}
	return path, nil
}
