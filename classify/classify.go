// Package classify provides the runtime predicates used during traversal and
// target resolution.
package classify

import (
	"os"
	"reflect"
)

// Kind names a conceptual shape a value can be checked against.
type Kind string

const (
	// Directory matches a string path naming an existing directory.
	Directory Kind = "directory"
	// File matches a string path naming an existing regular file.
	File Kind = "file"
	// Absent matches the "no value" sentinel.
	Absent Kind = "absent"
	// Module matches a caller-identity handle.
	Module Kind = "module"
)

// moduleHandle is the minimal surface a caller-identity handle exposes.
// Matching is duck-typed: any value with these methods qualifies.
type moduleHandle interface {
	Filename() string
	Exports() map[string]any
}

// Is reports whether value matches the given kind. Directory and File perform
// a filesystem existence and type check; any Kind other than the named
// constants is compared against the value's reflect kind (e.g. "string",
// "map", "func"). Pure query, no side effects.
func Is(value any, kind Kind) bool {
	switch kind {
	case Directory:
		path, ok := value.(string)
		if !ok {
			return false
		}
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	case File:
		path, ok := value.(string)
		if !ok {
			return false
		}
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	case Absent:
		return value == nil
	case Module:
		_, ok := value.(moduleHandle)
		return ok
	default:
		if value == nil {
			return false
		}
		return reflect.ValueOf(value).Kind().String() == string(kind)
	}
}
