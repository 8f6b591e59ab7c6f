package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/flatconf/configmap"
	"github.com/thirteen37/flatconf/flatkey"
)

// ErrNotObject indicates a document whose root is not an object.
var ErrNotObject = errors.New("document root is not an object")

// ArrayPolicy selects how Flatten treats arrays in the source document.
type ArrayPolicy int

const (
	// ArrayReject fails flattening with an UnsupportedArrayError when
	// an array is encountered. This is the default.
	ArrayReject ArrayPolicy = iota

	// ArrayIndex flattens array elements under numeric index segments,
	// e.g. servers__0__host.
	ArrayIndex
)

// Options configures Flatten.
type Options struct {
	Arrays ArrayPolicy
}

// UnsupportedArrayError reports an array found during flattening under
// the strict array policy.
type UnsupportedArrayError struct {
	// Key is the flat key path at which the array was found; empty for
	// an array at the document root.
	Key string
}

func (e *UnsupportedArrayError) Error() string {
	if e.Key == "" {
		return "unsupported array at document root"
	}
	return fmt.Sprintf("unsupported array at %q", e.Key)
}

// PathConflictError reports two flat keys implying incompatible
// structure at the same path.
type PathConflictError struct {
	// Key is the flat key whose insertion failed.
	Key string
	// Path is the flat key prefix at which the conflict occurred.
	Path string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("key %q conflicts with existing value at %q", e.Key, e.Path)
}

// Flatten walks a document tree and records one entry per scalar leaf,
// keyed by the double-underscore-joined path to that leaf. Scalars are
// coerced to canonical strings. A nil root yields an empty map.
//
// Object keys that are empty or contain the separator make the flat
// encoding ambiguous and fail with flatkey.ErrInvalidSegment.
func Flatten(root any, opts Options) (configmap.Map, error) {
	out := configmap.New()
	if root == nil {
		return out, nil
	}

	obj := AsObject(root)
	if obj == nil {
		arr, ok := root.([]any)
		if !ok {
			return nil, ErrNotObject
		}
		if opts.Arrays == ArrayReject {
			return nil, &UnsupportedArrayError{}
		}
		for i, item := range arr {
			if err := flattenValue(out, item, []string{strconv.Itoa(i)}, opts); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	if err := flattenInto(out, obj, nil, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out configmap.Map, obj *orderedmap.OrderedMap, path []string, opts Options) error {
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		if err := flattenValue(out, v, append(path, k), opts); err != nil {
			return err
		}
	}
	return nil
}

func flattenValue(out configmap.Map, v any, path []string, opts Options) error {
	if child := AsObject(v); child != nil {
		return flattenInto(out, child, path, opts)
	}

	if arr, ok := v.([]any); ok {
		if opts.Arrays == ArrayReject {
			return &UnsupportedArrayError{Key: strings.Join(path, flatkey.Separator)}
		}
		for i, item := range arr {
			if err := flattenValue(out, item, append(path, strconv.Itoa(i)), opts); err != nil {
				return err
			}
		}
		return nil
	}

	key, err := flatkey.Join(path)
	if err != nil {
		return fmt.Errorf("cannot flatten path %v: %w", path, err)
	}
	out.Set(key, Stringify(v))
	return nil
}

// Unflatten rebuilds an object tree from a flat map, splitting each key
// into path segments and inserting the value as a string leaf, creating
// intermediate objects as needed. Keys are inserted in lexicographic
// order, so the resulting tree serializes deterministically.
//
// Numeric segments stay object keys: Unflatten never reconstructs
// arrays, even from maps produced under the indexed array policy.
func Unflatten(m configmap.Map) (*orderedmap.OrderedMap, error) {
	root := orderedmap.New()

	for key := range m.Keys() {
		if !flatkey.Valid(key) {
			return nil, fmt.Errorf("%w: key %q", flatkey.ErrInvalidSegment, key)
		}
		segments := flatkey.Split(key)
		value, _ := m.Get(key)
		if err := insert(root, key, segments, value); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func insert(root *orderedmap.OrderedMap, key string, segments []string, value string) error {
	current := root
	for i, segment := range segments[:len(segments)-1] {
		next, exists := current.Get(segment)
		if !exists {
			child := orderedmap.New()
			current.Set(segment, child)
			current = child
			continue
		}
		child := AsObject(next)
		if child == nil {
			return &PathConflictError{
				Key:  key,
				Path: strings.Join(segments[:i+1], flatkey.Separator),
			}
		}
		current = child
	}

	last := segments[len(segments)-1]
	if existing, exists := current.Get(last); exists {
		if AsObject(existing) != nil {
			return &PathConflictError{Key: key, Path: key}
		}
	}
	current.Set(last, value)
	return nil
}
