package loader

import (
	"encoding/json"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// NewDefaultRegistry creates a registry with the built-in decoders: JSON,
// YAML, TOML and CUE.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register("json", decodeJSON)
	registry.Register("yaml", decodeYAML)
	registry.Register("yml", decodeYAML)
	registry.Register("toml", decodeTOML)
	registry.Register("cue", decodeCUE)
	return registry
}

func decodeJSON(data []byte, _ string) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func decodeYAML(data []byte, _ string) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func decodeTOML(data []byte, _ string) (any, error) {
	value := map[string]any{}
	if err := toml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func decodeCUE(data []byte, path string) (any, error) {
	compiled := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := compiled.Err(); err != nil {
		return nil, err
	}
	var value any
	if err := compiled.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
