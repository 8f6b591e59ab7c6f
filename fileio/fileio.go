// Package fileio reads and writes configuration documents on disk and
// on streams, mapping between bytes and document trees.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thirteen37/flatconf/format"
	inifmt "github.com/thirteen37/flatconf/format/ini"
	jsonfmt "github.com/thirteen37/flatconf/format/json"
	tomlfmt "github.com/thirteen37/flatconf/format/toml"
	yamlfmt "github.com/thirteen37/flatconf/format/yaml"
)

// Sentinel errors for document I/O.
var (
	// ErrNotFound indicates a missing source file.
	ErrNotFound = errors.New("file not found")

	// ErrParse indicates malformed document content.
	ErrParse = errors.New("parse error")

	// ErrWrite indicates a destination that could not be written.
	ErrWrite = errors.New("write error")
)

// ForFormat returns the handler for a format.
func ForFormat(f format.Format) (format.Handler, error) {
	switch f {
	case format.JSON:
		return jsonfmt.New(), nil
	case format.YAML:
		return yamlfmt.New(), nil
	case format.TOML:
		return tomlfmt.New(), nil
	case format.INI:
		return inifmt.New(), nil
	default:
		return nil, fmt.Errorf("no handler for format %q", f)
	}
}

// ReadDocument reads and parses the document at path, detecting JSON vs
// YAML by content. The detected format is returned alongside the tree.
func ReadDocument(path string) (any, format.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseDetected(data, path)
}

// ReadDocumentReader reads and parses a document from a stream,
// detecting JSON vs YAML by content.
func ReadDocumentReader(r io.Reader) (any, format.Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read input: %w", err)
	}
	return parseDetected(data, "input")
}

// ReadDocumentReaderAs reads and parses a document from a stream with
// an explicit format, bypassing detection.
func ReadDocumentReaderAs(r io.Reader, f format.Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	handler, err := ForFormat(f)
	if err != nil {
		return nil, err
	}
	tree, err := handler.Parse(data, format.ParseOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: input: %v", ErrParse, err)
	}
	return tree, nil
}

// ReadDocumentAs reads and parses the document at path with an explicit
// format, bypassing detection. Needed for TOML and INI sources.
func ReadDocumentAs(path string, f format.Format) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	handler, err := ForFormat(f)
	if err != nil {
		return nil, err
	}
	tree, err := handler.Parse(data, format.ParseOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return tree, nil
}

func parseDetected(data []byte, name string) (any, format.Format, error) {
	f := format.Detect(data)
	handler, err := ForFormat(f)
	if err != nil {
		return nil, "", err
	}
	tree, err := handler.Parse(data, format.ParseOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	return tree, f, nil
}

// WriteDocument serializes tree deterministically (sorted object keys)
// and writes it to path, creating parent directories as needed. The
// write goes through a temp file in the destination directory followed
// by a rename, so an interrupted write never leaves partial content.
func WriteDocument(tree any, path string, f format.Format) error {
	data, err := serialize(tree, f)
	if err != nil {
		return err
	}
	// Files end with a newline; JSON serialization does not carry one.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: cannot create directory %s: %v", ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// WriteDocumentWriter serializes tree deterministically and writes it
// to a stream.
func WriteDocumentWriter(tree any, w io.Writer, f format.Format) error {
	data, err := serialize(tree, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func serialize(tree any, f format.Format) ([]byte, error) {
	handler, err := ForFormat(f)
	if err != nil {
		return nil, err
	}
	data, err := handler.Serialize(tree, format.SerializeOptions{SortKeys: true})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", f, err)
	}
	return data, nil
}
