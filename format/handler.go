// Package format provides the interface and shared types for
// configuration document format handlers.
package format

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	StripComments bool // Strip comments (for JSON/JSONC)
}

// SerializeOptions configures serialization behavior.
type SerializeOptions struct {
	Indent   string // Indentation string (e.g., "  " or "\t")
	SortKeys bool   // Sort object keys recursively for deterministic output
}

// Handler defines the interface for document format handlers.
type Handler interface {
	// Parse reads raw bytes and returns a document tree rooted at an
	// *orderedmap.OrderedMap, preserving the source key order.
	Parse(data []byte, opts ParseOptions) (any, error)

	// Serialize writes the tree back to bytes. The output carries no
	// trailing newline beyond what the format itself requires.
	Serialize(tree any, opts SerializeOptions) ([]byte, error)
}
