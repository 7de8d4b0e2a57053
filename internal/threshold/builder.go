package threshold

import (
	"colorgate/internal/colorspace"
)

// ConfigEntry holds the low/high pair configured for one color space.
type ConfigEntry struct {
	Space colorspace.Space
	Low   []float64
	High  []float64
}

// Config is an ordered set of per-space bound entries. Order matters:
// when no threshold space is named, the first entry wins, so callers
// must hand over an explicitly ordered structure (the YAML loader in
// internal/config preserves document order for exactly this reason).
type Config []ConfigEntry

// Lookup returns the entry for the given space.
func (c Config) Lookup(space colorspace.Space) (ConfigEntry, bool) {
	for _, entry := range c {
		if entry.Space == space {
			return entry, true
		}
	}
	return ConfigEntry{}, false
}

// FromConfig builds a Spec from a structured threshold configuration.
// An empty thresh space selects the first configured entry. Fails with
// *ConfigError when the config is empty or does not cover the
// requested space; bound validation and conversion resolution are
// delegated to NewSpec.
func FromConfig(cfg Config, source, thresh colorspace.Space, opts ...Option) (*Spec, error) {
	if len(cfg) == 0 {
		return nil, newConfigError("empty threshold configuration")
	}

	if thresh == "" {
		thresh = cfg[0].Space
	}

	entry, ok := cfg.Lookup(thresh)
	if !ok {
		return nil, newConfigError("color space %s not present in configuration", thresh)
	}
	if len(entry.Low) == 0 || len(entry.High) == 0 {
		return nil, newConfigError("entry for %s is missing a low/high pair", thresh)
	}

	return NewSpec(entry.Low, entry.High, source, thresh, opts...)
}

// ParamStore is a named parameter source: a key lookup that yields a
// threshold configuration.
type ParamStore interface {
	Param(name string) (Config, error)
}

// FromStore loads a configuration from a parameter store and forwards
// to FromConfig. Its only added failure mode is a missing parameter,
// surfaced by the store as *ConfigError.
func FromStore(store ParamStore, name string, source, thresh colorspace.Space, opts ...Option) (*Spec, error) {
	cfg, err := store.Param(name)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg, source, thresh, opts...)
}
