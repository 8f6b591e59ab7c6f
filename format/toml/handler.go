// Package toml provides the TOML format handler.
package toml

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/flatconf/document"
	"github.com/thirteen37/flatconf/format"
)

// Handler implements format.Handler for TOML documents.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads TOML bytes into an *orderedmap.OrderedMap.
// Key order from the original TOML document is preserved.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for TOML format")
	}

	// Decode into a generic map to get values
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	// Convert to ordered map using metadata for key order
	return convertWithMeta(raw, meta, nil), nil
}

// convertWithMeta recursively converts map[string]any to
// *orderedmap.OrderedMap using TOML metadata to preserve key order.
func convertWithMeta(v any, meta toml.MetaData, prefix []string) any {
	switch val := v.(type) {
	case map[string]any:
		result := orderedmap.New()
		for _, k := range keysInOrder(meta, prefix, val) {
			result.Set(k, convertWithMeta(val[k], meta, append(prefix, k)))
		}
		return result
	case []map[string]any:
		// Array of tables
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertWithMeta(item, meta, prefix)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertWithMeta(item, meta, prefix)
		}
		return result
	default:
		return val
	}
}

// keysInOrder returns map keys in document order using TOML metadata.
func keysInOrder(meta toml.MetaData, prefix []string, m map[string]any) []string {
	needed := make(map[string]bool, len(m))
	for k := range m {
		needed[k] = true
	}

	var ordered []string
	for _, key := range meta.Keys() {
		if len(key) != len(prefix)+1 || !matchesPrefix(key, prefix) {
			continue
		}
		k := key[len(prefix)]
		if needed[k] && !slices.Contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}

	// Add any keys not found in metadata (shouldn't happen, but be safe)
	for k := range needed {
		if !slices.Contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}

	return ordered
}

// matchesPrefix checks if key starts with prefix.
func matchesPrefix(key toml.Key, prefix []string) bool {
	if len(key) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if key[i] != p {
			return false
		}
	}
	return true
}

// Serialize writes the tree to TOML bytes. The BurntSushi encoder sorts
// keys alphabetically, so output is deterministic regardless of
// opts.SortKeys.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	regular := toRegularMap(tree)

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if opts.Indent != "" {
		encoder.Indent = opts.Indent
	}
	if err := encoder.Encode(regular); err != nil {
		return nil, fmt.Errorf("failed to serialize TOML: %w", err)
	}

	return buf.Bytes(), nil
}

// toRegularMap recursively converts *orderedmap.OrderedMap to
// map[string]any for the TOML encoder.
func toRegularMap(v any) any {
	if om := document.AsObject(v); om != nil {
		result := make(map[string]any, len(om.Keys()))
		for _, k := range om.Keys() {
			val, _ := om.Get(k)
			result[k] = toRegularMap(val)
		}
		return result
	}
	if arr, ok := v.([]any); ok {
		result := make([]any, len(arr))
		for i, item := range arr {
			result[i] = toRegularMap(item)
		}
		return result
	}
	return v
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
