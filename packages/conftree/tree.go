package conftree

import (
	"reflect"
	"sort"
)

// Tree is one layer of configuration: a string-keyed mapping whose values
// are either nested mappings or leaf values (scalars, sequences, anything
// that is not a mapping). It aliases map[string]any, the representation
// every YAML/JSON decoder in the ecosystem produces, so decoder output can
// be merged without conversion.
//
// Trees must be finite and acyclic. Merge and Clone recurse structurally
// and will not terminate on a tree that contains itself.
type Tree = map[string]any

// Clone returns a deep copy of t. Nested mappings and sequences are copied
// recursively; scalar leaves are shared, they are treated as immutable
// payloads. Clone of a nil tree is nil.
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for key, value := range t {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether two trees hold the same configuration, comparing
// mappings recursively and leaves with the same equality Merge uses, so a
// tree decoded from YAML can be compared against one decoded from JSON
// without numeric type noise.
func Equal(a, b Tree) bool {
	if len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			return false
		}
		if !valueEqual(av, bv) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	am, aIsMap := a.(map[string]any)
	bm, bIsMap := b.(map[string]any)
	if aIsMap != bIsMap {
		return false
	}
	if aIsMap {
		return Equal(am, bm)
	}
	return leafEqual(a, b)
}

// leafEqual reports whether two leaf values are equal for merge purposes.
// Equality is reflect.DeepEqual, except that numeric values compare by
// value regardless of their Go type, so an int 1 from one decoder equals a
// float64 1.0 from another. Strings are never coerced: "1" and 1 differ.
func leafEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}

	aNum, aOk := toFloat64(a)
	bNum, bOk := toFloat64(b)
	return aOk && bOk && aNum == bNum
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// sortedKeys returns the keys of t in sorted order so merge visits source
// keys deterministically.
func sortedKeys(t Tree) []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
