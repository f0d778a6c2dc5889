package style

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	yaml "gopkg.in/yaml.v3"
)

// Decode reads a single style object from r. Both YAML and JSON are accepted,
// mapping order is preserved.
func Decode(r io.Reader) (*Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewNode(), nil
		}
		return nil, fmt.Errorf("failed to decode style data: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewNode(), nil
		}
		root = root.Content[0]
	}
	node := &Node{}
	if err := node.UnmarshalYAML(root); err != nil {
		return nil, err
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: style object must be a mapping", value.Line)
	}
	n.entries = nil
	n.init()
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := resolveAlias(value.Content[i]), value.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: style key must be a scalar", k.Line)
		}
		if n.Has(k.Value) {
			return fmt.Errorf("line %d: duplicate style key %q", k.Line, k.Value)
		}
		decoded, err := decodeValue(v)
		if err != nil {
			return fmt.Errorf("key %q: %w", k.Value, err)
		}
		n.entries.Set(k.Value, decoded)
	}
	return nil
}

func resolveAlias(value *yaml.Node) *yaml.Node {
	for value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	return value
}

func decodeValue(value *yaml.Node) (any, error) {
	value = resolveAlias(value)
	switch value.Kind {
	case yaml.MappingNode:
		child := &Node{}
		if err := child.UnmarshalYAML(value); err != nil {
			return nil, err
		}
		return child, nil
	case yaml.ScalarNode:
		switch value.ShortTag() {
		case "!!str":
			return value.Value, nil
		case "!!int", "!!float":
			var f float64
			if err := value.Decode(&f); err != nil {
				return nil, fmt.Errorf("line %d: %w", value.Line, err)
			}
			return f, nil
		default:
			return nil, fmt.Errorf("line %d: unsupported value %q (%s)", value.Line, value.Value, value.ShortTag())
		}
	default:
		return nil, fmt.Errorf("line %d: style value must be a string, a number or a mapping", value.Line)
	}
}

// MarshalYAML implements yaml.Marshaler, entries are emitted in order.
func (n *Node) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, value := range n.All() {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		var v *yaml.Node
		switch val := value.(type) {
		case string:
			v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}
		case float64:
			// empty tag lets encoder resolve it, explicit !!float would be
			// printed for integral values
			v = &yaml.Node{Kind: yaml.ScalarNode, Value: yamlNumber(val)}
		case *Node:
			m, err := val.MarshalYAML()
			if err != nil {
				return nil, err
			}
			v = m.(*yaml.Node)
		}
		out.Content = append(out.Content, k, v)
	}
	return out, nil
}

func yamlNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return FormatNumber(f)
}

// MarshalJSON implements json.Marshaler, entries are emitted in order.
// Non-finite numbers are not representable in JSON and result in error.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, value := range n.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')

		switch val := value.(type) {
		case string:
			if err := writeJSONString(&buf, val); err != nil {
				return nil, err
			}
		case float64:
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, fmt.Errorf("key %q: unsupported number %s", key, FormatNumber(val))
			}
			buf.WriteString(FormatNumber(val))
		case *Node:
			data, err := val.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString writes s as JSON string without HTML escaping, selectors
// use '&' and '>' a lot.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// drop newline added by Encode
	buf.Truncate(buf.Len() - 1)
	return nil
}
