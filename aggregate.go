package dirfold

import (
	"path/filepath"
	"sort"

	"github.com/dirfold/dirfold/tree"
)

// aggregate folds records left-to-right into one nested mapping. Index files
// land on their containing node, siblings governed by an index fold into the
// directory node, and collisions merge with the index's exports as the base.
func aggregate(records []*Record, cfg *config) *tree.Mapping {
	mapping := tree.New()
	indexSiblings := indexSiblingSet(records, cfg)

	for _, record := range records {
		isIndex := !cfg.indexProp && record.Basename == cfg.indexName

		if isIndex {
			if len(record.Props) > 0 && mapping.Has(record.Props...) {
				mergeIndex(mapping, record.Props, record.Exports, cfg)
			} else {
				mapping.Set(record.Props, record.Exports)
			}
			continue
		}

		if !cfg.indexProp && cfg.excludeSiblings && indexSiblings[siblingKey(record)] {
			// A same-extension index file governs this directory; the
			// sibling folds into the directory node instead of taking a
			// standalone key. Fields the index already exported win.
			attachField(mapping, record.Props, record.Basename, record.Exports, false)
			continue
		}

		propsPath := append(append([]string{}, record.Props...), record.Basename)
		if !cfg.indexProp && mapping.Has(propsPath...) {
			attachField(mapping, propsPath, record.Basename, record.Exports, true)
			continue
		}
		mapping.Set(propsPath, record.Exports)
	}
	return mapping
}

// indexSiblingSet records which (directory, extension) pairs carry an index
// file, so sibling folding can be decided per record.
func indexSiblingSet(records []*Record, cfg *config) map[string]bool {
	if cfg.indexProp {
		return nil
	}
	set := make(map[string]bool)
	for _, record := range records {
		if record.Basename == cfg.indexName {
			set[siblingKey(record)] = true
		}
	}
	return set
}

func siblingKey(record *Record) string {
	return filepath.Dir(record.Path) + "\x00" + record.Extname
}

// mergeIndex replaces the value at path with the index exports as the base
// object, enriched with fields already stored there. Index fields win on
// collision. Nested directory entries are carried over only when children
// exclusion is on; a non-map index export cannot be enriched and wins
// outright.
func mergeIndex(mapping *tree.Mapping, path []string, exports any, cfg *config) {
	var merged *tree.Mapping
	switch v := exports.(type) {
	case *tree.Mapping:
		merged = v
	case map[string]any:
		merged = tree.FromMap(v)
	default:
		mapping.Set(path, exports)
		return
	}

	stored, _ := mapping.Get(path...)
	switch s := stored.(type) {
	case *tree.Mapping:
		for _, key := range s.Keys() {
			value, _ := s.Entry(key)
			copyStoredField(merged, key, value, cfg)
		}
	case map[string]any:
		keys := make([]string, 0, len(s))
		for key := range s {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			copyStoredField(merged, key, s[key], cfg)
		}
	}

	mapping.Set(path, merged)
}

func copyStoredField(merged *tree.Mapping, key string, value any, cfg *config) {
	if merged.Has(key) {
		return
	}
	if _, isNested := value.(*tree.Mapping); isNested && !cfg.excludeChildren {
		return
	}
	merged.SetEntry(key, value)
}

// attachField stores value under name on the node at path, converting or
// creating the node as needed. When overwrite is false an existing field is
// left untouched.
func attachField(mapping *tree.Mapping, path []string, name string, value any, overwrite bool) {
	if len(path) == 0 {
		if !overwrite && mapping.Has(name) {
			return
		}
		mapping.SetEntry(name, value)
		return
	}

	stored, ok := mapping.Get(path...)
	if !ok {
		node := tree.New()
		node.SetEntry(name, value)
		mapping.Set(path, node)
		return
	}
	switch s := stored.(type) {
	case *tree.Mapping:
		if !overwrite && s.Has(name) {
			return
		}
		s.SetEntry(name, value)
	case map[string]any:
		if _, exists := s[name]; exists && !overwrite {
			return
		}
		s[name] = value
	default:
		node := tree.New()
		node.SetEntry(name, value)
		mapping.Set(path, node)
	}
}
