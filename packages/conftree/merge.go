package conftree

import (
	"fmt"
	"strings"
)

// Policy selects what Merge does when the same key holds two different
// non-mapping values in the target and the source.
type Policy int

const (
	// Overwrite replaces the target value with the source value.
	Overwrite Policy = iota
	// Raise fails the merge with a ConflictError naming the key path.
	Raise
)

func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Raise:
		return "raise"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ConflictError reports two trees disagreeing on the value of the same key
// where the values cannot be merged structurally. Path locates the key as a
// dotted path from the root, for example "driver.options.memory".
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("merge conflict at %q", e.Path)
}

// Merge folds source into target and returns target.
//
// For each key in source: a key absent from target is inserted (mapping
// values are deep-copied so target and source share no structure); a key
// that is a mapping in both trees is merged recursively; a key whose values
// compare equal is left alone; anything else is a conflict resolved by
// policy. Under Overwrite the source value wins, replacing the target value
// (or the whole target subtree on a mapping/leaf type mismatch). Under
// Raise the merge stops at the first conflict and returns a *ConflictError
// carrying the dotted key path.
//
// Target is mutated in place and also returned; callers keeping the
// original target reference see the merged result. A nil target is
// replaced, so callers starting from nil must use the return value. Source
// is never mutated. The merge is not transactional: under Raise the target
// may be partially updated when an error is returned. Callers that need the
// original on failure should merge into a Clone.
//
// Merge is a pure in-memory computation, safe to run concurrently on
// disjoint trees but not on a shared target.
func Merge(target, source Tree, policy Policy) (Tree, error) {
	return merge(target, source, policy, nil)
}

func merge(target, source Tree, policy Policy, path []string) (Tree, error) {
	if target == nil {
		target = Tree{}
	}

	for _, key := range sortedKeys(source) {
		incoming := source[key]

		current, exists := target[key]
		if !exists {
			if m, ok := incoming.(map[string]any); ok {
				target[key] = Clone(m)
			} else {
				target[key] = incoming
			}
			continue
		}

		currentMap, currentIsMap := current.(map[string]any)
		incomingMap, incomingIsMap := incoming.(map[string]any)

		if currentIsMap && incomingIsMap {
			merged, err := merge(currentMap, incomingMap, policy, append(path, key))
			if err != nil {
				return target, err
			}
			target[key] = merged
			continue
		}

		if leafEqual(current, incoming) {
			continue
		}

		if policy == Raise {
			return target, &ConflictError{Path: strings.Join(append(path, key), ".")}
		}

		if incomingIsMap {
			target[key] = Clone(incomingMap)
		} else {
			target[key] = incoming
		}
	}

	return target, nil
}
