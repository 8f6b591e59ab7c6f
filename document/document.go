// Package document provides the flatten/unflatten transforms between a
// nested configuration document tree and a flat configuration map.
//
// A document tree is built from *orderedmap.OrderedMap (objects), []any
// (arrays) and scalars (string, bool, numbers, nil), the shapes the
// format handlers produce.
package document

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/iancoleman/orderedmap"
)

// AsObject converts both value and pointer forms of OrderedMap to a
// pointer. Returns nil if v is not an object.
func AsObject(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

// Stringify converts a scalar to its canonical string form: booleans as
// "true"/"false", integral floats without a decimal point, nil as
// "null". Non-scalar values fall back to fmt formatting.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		// YAML resolves plain timestamp scalars to time.Time.
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// SortTree recursively sorts every object's keys in lexicographic
// order, in place. Used before serialization to produce deterministic,
// diffable output.
func SortTree(tree any) {
	switch val := tree.(type) {
	case *orderedmap.OrderedMap:
		val.SortKeys(sort.Strings)
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			// Nested objects decode as value types; sort a pointer
			// copy and re-set so the sorted copy stays in the tree.
			if om := AsObject(child); om != nil {
				SortTree(om)
				val.Set(k, om)
			} else {
				SortTree(child)
			}
		}
	case []any:
		for i, item := range val {
			if om := AsObject(item); om != nil {
				SortTree(om)
				val[i] = om
			} else {
				SortTree(item)
			}
		}
	}
}
