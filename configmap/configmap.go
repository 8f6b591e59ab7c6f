// Package configmap provides the flat string-to-string map that holds a
// flattened configuration document.
package configmap

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Map is a flat configuration map keyed by double-underscore-joined key
// paths. A Map is owned by a single caller; concurrent mutation must be
// serialized externally.
type Map map[string]string

// New creates an empty Map.
func New() Map {
	return make(Map)
}

// Get returns the value for key and whether it is present.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set stores value under key, overwriting any existing entry.
func (m Map) Set(key, value string) {
	m[key] = value
}

// Delete removes key. Deleting an absent key is a no-op.
func (m Map) Delete(key string) {
	delete(m, key)
}

// Len returns the number of entries.
func (m Map) Len() int {
	return len(m)
}

// Keys iterates over the keys in lexicographic order. The sequence is
// restartable; each range re-sorts against the current contents.
func (m Map) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Merge copies every entry of src into m under prefix+key, overwriting
// existing entries. src is not modified. An empty prefix merges keys
// unchanged.
func (m Map) Merge(src Map, prefix string) {
	for k, v := range src {
		m[prefix+k] = v
	}
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MissingKeysError reports every required key absent from a Map.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required keys: %s", strings.Join(e.Keys, ", "))
}

// ValidateRequired checks that every key in required is present.
// Presence only: empty values pass. On failure the returned
// *MissingKeysError lists all absent keys, not just the first.
func (m Map) ValidateRequired(required []string) error {
	var missing []string
	for _, k := range required {
		if _, ok := m[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// Fprint writes the map to w as key=value lines, one entry per line,
// keys in lexicographic order. Intended for human inspection.
func (m Map) Fprint(w io.Writer) error {
	for k := range m.Keys() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, m[k]); err != nil {
			return err
		}
	}
	return nil
}
