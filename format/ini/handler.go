// Package ini provides the INI format handler.
package ini

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/ini.v1"

	"github.com/thirteen37/flatconf/document"
	"github.com/thirteen37/flatconf/format"
)

// Handler implements format.Handler for INI documents.
//
// INI is a two-level format. Parsed documents have the shape
// {"section": {"key": "value"}}, with keys outside any section kept at
// the document root. Trees nested deeper than two levels cannot be
// serialized.
type Handler struct{}

// New creates a new INI handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads INI bytes into an *orderedmap.OrderedMap.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for INI format")
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}

	result := orderedmap.New()

	for _, section := range cfg.Sections() {
		// Sectionless keys stay at the document root, mirroring the
		// serialize side's top-level-scalar handling.
		if section.Name() == ini.DefaultSection {
			for _, key := range section.Keys() {
				result.Set(key.Name(), key.Value())
			}
			continue
		}

		sectionMap := orderedmap.New()
		for _, key := range section.Keys() {
			sectionMap.Set(key.Name(), key.Value())
		}
		result.Set(section.Name(), sectionMap)
	}

	return result, nil
}

// Serialize writes the tree to INI bytes. Top-level scalars go to the
// global section; values nested deeper than section/key fail.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	om := document.AsObject(tree)
	if om == nil {
		return nil, fmt.Errorf("tree is not an object")
	}
	if opts.SortKeys {
		document.SortTree(om)
	}

	cfg := ini.Empty()

	for _, name := range om.Keys() {
		val, _ := om.Get(name)

		sectionMap := document.AsObject(val)
		if sectionMap == nil {
			// Top-level scalar: global section key.
			if _, ok := val.([]any); ok {
				return nil, fmt.Errorf("cannot serialize array at %q to INI", name)
			}
			if _, err := cfg.Section(ini.DefaultSection).NewKey(name, document.Stringify(val)); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", name, err)
			}
			continue
		}

		section, err := sectionFor(cfg, name)
		if err != nil {
			return nil, err
		}
		for _, keyName := range sectionMap.Keys() {
			keyVal, _ := sectionMap.Get(keyName)
			if document.AsObject(keyVal) != nil {
				return nil, fmt.Errorf("cannot serialize %s.%s to INI: nesting deeper than section/key", name, keyName)
			}
			if _, ok := keyVal.([]any); ok {
				return nil, fmt.Errorf("cannot serialize array at %s.%s to INI", name, keyName)
			}
			if _, err := section.NewKey(keyName, document.Stringify(keyVal)); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", keyName, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize INI: %w", err)
	}

	return buf.Bytes(), nil
}

func sectionFor(cfg *ini.File, name string) (*ini.Section, error) {
	if name == "" {
		return cfg.Section(ini.DefaultSection), nil
	}
	section, err := cfg.NewSection(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create section %q: %w", name, err)
	}
	return section, nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
