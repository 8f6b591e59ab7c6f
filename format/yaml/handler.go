// Package yaml provides the YAML format handler.
package yaml

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"

	"github.com/thirteen37/flatconf/document"
	"github.com/thirteen37/flatconf/format"
)

// Handler implements format.Handler for YAML documents.
type Handler struct{}

// New creates a new YAML handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads YAML bytes into an *orderedmap.OrderedMap, preserving the
// source key order. An empty document parses to an empty object.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for YAML format")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if root.Kind == 0 {
		return orderedmap.New(), nil
	}

	tree, err := decodeNode(&root)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return orderedmap.New(), nil
	}
	if document.AsObject(tree) == nil {
		return nil, fmt.Errorf("YAML document root is not a mapping")
	}
	return tree, nil
}

// decodeNode converts a yaml.Node into the generic tree shape. Mapping
// nodes carry their content as a flat [key, value, key, value, ...]
// slice; walking it in pairs preserves document order.
func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeNode(n.Content[0])
	case yaml.MappingNode:
		result := orderedmap.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", keyNode.Line)
			}
			val, err := decodeNode(valNode)
			if err != nil {
				return nil, err
			}
			result.Set(keyNode.Value, val)
		}
		return result, nil
	case yaml.SequenceNode:
		result := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			val, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			result = append(result, val)
		}
		return result, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

// Serialize writes the tree to YAML bytes.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	if opts.SortKeys {
		document.SortTree(tree)
	}

	node, err := encodeNode(tree)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to serialize YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to serialize YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeNode converts the generic tree shape back into a yaml.Node.
func encodeNode(v any) (*yaml.Node, error) {
	if om := document.AsObject(v); om != nil {
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range om.Keys() {
			val, _ := om.Get(k)
			valNode, err := encodeNode(val)
			if err != nil {
				return nil, err
			}
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil
	}

	if arr, ok := v.([]any); ok {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range arr {
			itemNode, err := encodeNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	}

	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode scalar %v: %w", v, err)
	}
	return node, nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
