// Package json provides the JSON format handler.
package json

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/flatconf/document"
	"github.com/thirteen37/flatconf/format"
)

// Handler implements format.Handler for JSON/JSONC documents.
type Handler struct{}

// New creates a new JSON handler.
func New() *Handler {
	return &Handler{}
}

// commentRegex matches single-line // comments.
var commentRegex = regexp.MustCompile(`(?m)^\s*//.*$|//[^"]*$`)

// StripComments removes single-line // comments from JSON.
// This allows parsing JSONC (JSON with comments) files.
func StripComments(data []byte) []byte {
	return commentRegex.ReplaceAll(data, nil)
}

// Parse reads JSON bytes into an *orderedmap.OrderedMap, preserving the
// source key order.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		data = StripComments(data)
	}

	result := orderedmap.New()
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return result, nil
}

// Serialize writes the tree to indented JSON bytes.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	if opts.SortKeys {
		document.SortTree(tree)
	}

	data, err := json.MarshalIndent(tree, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	return data, nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
