package config

import (
	"fmt"

	"colorgate/internal/colorspace"
	"colorgate/internal/threshold"

	"gopkg.in/yaml.v3"
)

// ParseThresholds decodes a threshold configuration document: a
// mapping from color-space name to either {low: [...], high: [...]}
// or a two-element [[low...], [high...]] pair. Decoding walks the
// yaml.Node tree instead of a map so that document order survives;
// the first key is meaningful when no threshold space is named.
func ParseThresholds(data []byte) (threshold.Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &threshold.ConfigError{Reason: fmt.Sprintf("invalid yaml: %v", err)}
	}
	if len(doc.Content) == 0 {
		return nil, &threshold.ConfigError{Reason: "empty threshold configuration"}
	}
	return thresholdsFromNode(doc.Content[0])
}

func thresholdsFromNode(node *yaml.Node) (threshold.Config, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &threshold.ConfigError{Reason: "threshold configuration must be a mapping of color space to bounds"}
	}

	cfg := make(threshold.Config, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		space, err := colorspace.ParseSpace(keyNode.Value)
		if err != nil {
			return nil, &threshold.ConfigError{Reason: err.Error()}
		}

		low, high, err := boundsFromNode(valueNode)
		if err != nil {
			return nil, &threshold.ConfigError{Reason: fmt.Sprintf("entry %s: %v", space, err)}
		}

		cfg = append(cfg, threshold.ConfigEntry{Space: space, Low: low, High: high})
	}

	if len(cfg) == 0 {
		return nil, &threshold.ConfigError{Reason: "empty threshold configuration"}
	}
	return cfg, nil
}

// boundsFromNode interprets one per-space entry. Accepted shapes are
// the keyed form {low, high} and a strict two-element sequence.
func boundsFromNode(node *yaml.Node) (low, high []float64, err error) {
	switch node.Kind {
	case yaml.MappingNode:
		var entry struct {
			Low  []float64 `yaml:"low"`
			High []float64 `yaml:"high"`
		}
		if err := node.Decode(&entry); err != nil {
			return nil, nil, fmt.Errorf("cannot decode low/high mapping: %w", err)
		}
		if entry.Low == nil || entry.High == nil {
			return nil, nil, fmt.Errorf("mapping must contain both low and high")
		}
		return entry.Low, entry.High, nil

	case yaml.SequenceNode:
		var pair [][]float64
		if err := node.Decode(&pair); err != nil {
			return nil, nil, fmt.Errorf("cannot decode bound pair: %w", err)
		}
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("sequence form requires exactly two bound vectors, got %d", len(pair))
		}
		return pair[0], pair[1], nil

	default:
		return nil, nil, fmt.Errorf("cannot interpret entry as a low/high pair")
	}
}
