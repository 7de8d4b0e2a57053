package config

import (
	"fmt"
	"os"

	"colorgate/internal/threshold"

	"gopkg.in/yaml.v3"
)

// Store is a file-backed parameter source. The file is a mapping from
// parameter name to a threshold configuration document; lookups after
// load are read-only. Implements threshold.ParamStore.
type Store struct {
	params map[string]threshold.Config
}

// LoadStore reads and decodes a parameter file.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameter file: %w", err)
	}
	return NewStore(data)
}

// NewStore decodes parameter data already in memory.
func NewStore(data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &threshold.ConfigError{Reason: fmt.Sprintf("invalid parameter file: %v", err)}
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, &threshold.ConfigError{Reason: "parameter file must be a mapping of name to threshold configuration"}
	}

	root := doc.Content[0]
	params := make(map[string]threshold.Config, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		cfg, err := thresholdsFromNode(root.Content[i+1])
		if err != nil {
			return nil, &threshold.ConfigError{Reason: fmt.Sprintf("parameter %q: %v", name, err)}
		}
		params[name] = cfg
	}

	return &Store{params: params}, nil
}

// Param returns the configuration stored under name.
func (s *Store) Param(name string) (threshold.Config, error) {
	cfg, ok := s.params[name]
	if !ok {
		return nil, &threshold.ConfigError{Reason: fmt.Sprintf("parameter %q not found", name)}
	}
	return cfg, nil
}

// Names lists the stored parameter names, for diagnostics.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.params))
	for name := range s.params {
		names = append(names, name)
	}
	return names
}
