// Package flatconf transcodes between nested JSON/YAML configuration
// documents and flat string-to-string maps whose keys encode nesting
// with a double-underscore separator.
//
// A document like
//
//	{"database": {"host": "localhost", "port": 5432}}
//
// loads as the map
//
//	database__host=localhost
//	database__port=5432
//
// and saves back to an equivalent document. All scalar values are
// carried as strings; output is deterministic with object keys sorted
// lexicographically.
package flatconf

import (
	"io"

	"github.com/thirteen37/flatconf/configmap"
	"github.com/thirteen37/flatconf/document"
	"github.com/thirteen37/flatconf/fileio"
	"github.com/thirteen37/flatconf/format"
)

// LoadOptions configures Load and LoadReader.
type LoadOptions struct {
	// Arrays selects how arrays in the source document are handled.
	// The default rejects them.
	Arrays document.ArrayPolicy

	// Format forces the source format instead of detecting JSON vs
	// YAML by content. Required for TOML and INI sources.
	Format format.Format
}

// Load reads the document at path and flattens it into a Map.
func Load(path string, opts LoadOptions) (configmap.Map, error) {
	var tree any
	var err error
	if opts.Format != "" {
		tree, err = fileio.ReadDocumentAs(path, opts.Format)
	} else {
		tree, _, err = fileio.ReadDocument(path)
	}
	if err != nil {
		return nil, err
	}
	return document.Flatten(tree, document.Options{Arrays: opts.Arrays})
}

// LoadReader reads a document from a stream and flattens it into a
// Map. Source format is detected by content unless opts.Format is set.
func LoadReader(r io.Reader, opts LoadOptions) (configmap.Map, error) {
	var tree any
	var err error
	if opts.Format != "" {
		tree, err = fileio.ReadDocumentReaderAs(r, opts.Format)
	} else {
		tree, _, err = fileio.ReadDocumentReader(r)
	}
	if err != nil {
		return nil, err
	}
	return document.Flatten(tree, document.Options{Arrays: opts.Arrays})
}

// Save rebuilds the nested document from m and writes it to path in
// the given format (JSON when empty). The write is atomic: parent
// directories are created, and content lands via temp file and rename.
func Save(m configmap.Map, path string, f format.Format) error {
	tree, err := document.Unflatten(m)
	if err != nil {
		return err
	}
	if f == "" {
		f = format.JSON
	}
	return fileio.WriteDocument(tree, path, f)
}

// SaveWriter rebuilds the nested document from m and writes it to a
// stream in the given format (JSON when empty).
func SaveWriter(m configmap.Map, w io.Writer, f format.Format) error {
	tree, err := document.Unflatten(m)
	if err != nil {
		return err
	}
	if f == "" {
		f = format.JSON
	}
	return fileio.WriteDocumentWriter(tree, w, f)
}
