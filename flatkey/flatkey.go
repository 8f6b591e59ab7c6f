// Package flatkey provides the codec between nested key paths and flat
// double-underscore-joined keys.
package flatkey

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins path segments into a flat key.
const Separator = "__"

// ErrInvalidSegment indicates a path segment that is empty or contains
// the separator sequence.
var ErrInvalidSegment = errors.New("invalid key segment")

// Join builds a flat key from path segments.
// Example: ["database", "host"] -> "database__host"
func Join(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: empty path", ErrInvalidSegment)
	}
	for _, s := range segments {
		if s == "" {
			return "", fmt.Errorf("%w: empty segment", ErrInvalidSegment)
		}
		if strings.Contains(s, Separator) {
			return "", fmt.Errorf("%w: segment %q contains %q", ErrInvalidSegment, s, Separator)
		}
	}
	return strings.Join(segments, Separator), nil
}

// Split decomposes a flat key into its path segments.
// It is the inverse of Join for well-formed input. If a segment value
// originally contained the separator the split is ambiguous and cannot
// be detected here; that is a documented limitation of the encoding.
func Split(key string) []string {
	return strings.Split(key, Separator)
}

// Valid reports whether key is a well-formed flat key: at least one
// segment, no segment empty.
func Valid(key string) bool {
	if key == "" {
		return false
	}
	for _, s := range Split(key) {
		if s == "" {
			return false
		}
	}
	return true
}
