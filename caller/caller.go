// Package caller models caller identity: which file invoked the aggregator,
// the chain of files that caused it to load, and the export surface results
// can be mirrored onto.
package caller

import "runtime"

// Module is a caller-identity handle. It carries the absolute path of the
// unit's file, an optional parent (the unit that caused this one to load),
// and a keyed export surface.
type Module struct {
	filename string
	parent   *Module
	exports  map[string]any
}

// New creates a handle for the unit at filename. parent may be nil for a root
// module with no loader.
func New(filename string, parent *Module) *Module {
	return &Module{
		filename: filename,
		parent:   parent,
		exports:  make(map[string]any),
	}
}

// Filename returns the absolute path of the module's file.
func (m *Module) Filename() string {
	return m.filename
}

// Parent returns the module that loaded this one, or nil at the root.
func (m *Module) Parent() *Module {
	return m.parent
}

// Exports returns the module's live export surface.
func (m *Module) Exports() map[string]any {
	return m.exports
}

// Export assigns a value onto the export surface under name.
func (m *Module) Export(name string, value any) {
	m.exports[name] = value
}

// HasExport reports whether name is already taken on the export surface.
func (m *Module) HasExport(name string) bool {
	_, ok := m.exports[name]
	return ok
}

// Chain returns the file paths of the module and its ancestry, innermost
// first, terminating at the root module with no parent.
func (m *Module) Chain() []string {
	var chain []string
	for current := m; current != nil; current = current.parent {
		chain = append(chain, current.filename)
	}
	return chain
}

// File returns the source file of the function skip frames up the call stack.
// skip=0 is the caller of File itself.
func File(skip int) (string, bool) {
	_, file, _, ok := runtime.Caller(skip + 1)
	return file, ok
}
