package dyn

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

var errNotScalar = errors.New("dyn: expected YAML scalar")

// ParseValue decodes a single YAML scalar such as "3", "2.5", "true",
// "null" or "text" into a Value of the matching kind.
func ParseValue(s string) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(s), &node); err != nil {
		return Value{}, fmt.Errorf("dyn: parse %q: %w", s, err)
	}
	if node.Kind == 0 {
		// Empty document.
		return Null(), nil
	}
	var v Value
	if err := node.Decode(&v); err != nil {
		return Value{}, fmt.Errorf("dyn: parse %q: %w", s, err)
	}
	return v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w at line %d", errNotScalar, node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*v = Null()
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = FromBool(b)
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		*v = FromInt(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = FromF64(f)
	default:
		*v = FromString(node.Value)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindBool:
		b, _ := v.Bool()
		return b, nil
	case KindInt:
		i, _ := v.Int()
		return i, nil
	case KindFloat:
		f, _ := v.Float()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			// Keep the float tag for integral values so kinds survive a round trip.
			s := strconv.FormatFloat(f, 'f', -1, 64) + ".0"
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}, nil
		}
		return f, nil
	case KindString:
		return v.str, nil
	}
	return nil, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for sequence nodes of scalars.
func (a *Array) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("dyn: expected YAML sequence at line %d", node.Line)
	}
	vals := make([]Value, len(node.Content))
	for i, elem := range node.Content {
		if err := vals[i].UnmarshalYAML(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	a.vals = vals
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Array) MarshalYAML() (any, error) {
	if a.vals == nil {
		return []Value{}, nil
	}
	return a.vals, nil
}
