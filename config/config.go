package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config wraps a map[string]any for type-safe, default-falling-back value
// extraction, mirroring the wrapper-over-map pattern used elsewhere in the
// pack for the same purpose.
type Config struct {
	data map[string]any
}

// New wraps data as a Config. A nil map yields an empty Config.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}

	return Config{data: data}
}

// FromFile reads and parses path as YAML into a Config.
func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return New(m), nil
}

// String returns the string value for key, or defaultVal if missing or not
// a string.
func (c Config) String(key, defaultVal string) string {
	if v, ok := c.data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not
// convertible. YAML decodes bare integers as int.
func (c Config) Int(key string, defaultVal int) int {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return defaultVal
	}
}

// Bool returns the boolean value for key, or defaultVal if missing or not
// a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if v, ok := c.data[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}

	return defaultVal
}

// Has reports whether key is present in the underlying map, letting a
// caller distinguish "absent" from "present with an unconvertible type".
func (c Config) Has(key string) bool {
	_, ok := c.data[key]

	return ok
}
