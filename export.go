package dirfold

import (
	"strconv"
	"unicode"

	"github.com/dirfold/dirfold/caller"
	"github.com/dirfold/dirfold/classify"
	"github.com/dirfold/dirfold/tree"
)

// goReservedWords are the Go keywords an exported name must not shadow when
// Safe renaming is on.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// exportRoot mirrors the mapping's root entries onto the target module's
// export surface. It applies only when a target module exists, export is
// enabled, and at least one root entry holds a non-absent value.
func exportRoot(mapping *tree.Mapping, target *caller.Module, cfg *config) {
	if target == nil || !cfg.export || mapping.Len() == 0 {
		return
	}

	anyPresent := false
	for _, key := range mapping.Keys() {
		if value, _ := mapping.Entry(key); !classify.Is(value, classify.Absent) {
			anyPresent = true
			break
		}
	}
	if !anyPresent {
		return
	}

	for _, key := range mapping.Keys() {
		value, _ := mapping.Entry(key)

		name := key
		if cfg.safe {
			name = safeName(name)
		}
		name = uniqueName(name, target)

		if name == "" || classify.Is(value, classify.Absent) {
			continue
		}
		if cfg.exportWith != nil {
			cfg.exportWith(ExportContext{Name: name, Exports: value, Mapping: mapping, Target: target})
			continue
		}
		target.Export(name, value)
	}
}

// safeName capitalizes a name that collides with a Go reserved word.
func safeName(name string) string {
	if name == "" || !goReservedWords[name] {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// uniqueName appends an incrementing suffix until the name is free on the
// target's export surface. The counter is scoped to this call so suffixes
// stay deterministic across keys.
func uniqueName(name string, target *caller.Module) string {
	if name == "" {
		return name
	}
	candidate := name
	for attempt := 1; target.HasExport(candidate); attempt++ {
		candidate = name + strconv.Itoa(attempt)
	}
	return candidate
}
