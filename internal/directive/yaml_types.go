package directive

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StatusCode is a wire-level status code that accepts either a YAML
// integer or a numeric string ("404"), so directive files survive
// quoting styles of different YAML emitters.
type StatusCode int

// UnmarshalYAML implements custom YAML unmarshaling for StatusCode.
func (c *StatusCode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar status code, got %v", node.Kind)
	}

	var n int
	if err := node.Decode(&n); err == nil {
		*c = StatusCode(n)
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid status code %q: %w", s, err)
	}

	*c = StatusCode(n)

	return nil
}

// MarshalYAML implements custom YAML marshaling for StatusCode.
// Codes always round-trip as plain integers.
func (c StatusCode) MarshalYAML() (any, error) {
	return int(c), nil
}
