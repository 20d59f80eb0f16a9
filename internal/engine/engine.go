// Package engine holds the recursive implementation of the mask engine.
// The root package keeps the public API and delegates here, so everything
// in this package is free to change shape between releases.
//
// A mask tree is an any value holding bool, map[string]any, or (in source
// form only) []any. Canonicalize removes the []any case up front; the
// rest of the engine only ever sees booleans and maps.
package engine

import (
	"sort"

	"github.com/reoring/objmask/deepval"
)

// Wildcard is the reserved key whose mask applies to every field not
// explicitly listed in the same node.
const Wildcard = "_"

// SimpleIssue is a lightweight issue record. The root package converts
// these into its public Issues type.
type SimpleIssue struct {
	Path    string
	Code    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.Message }

// Issue codes shared with the root package.
const (
	CodeInvalidOperation = "invalid_operation"
	CodeWildcardRemoval  = "wildcard_removal"
)

// Truthy reports whether a mask node grants anything: exact true, or a
// map that may grant per key. Every other value, including malformed
// scalar leaves, denies.
func Truthy(mask any) bool {
	if b, ok := mask.(bool); ok {
		return b
	}
	_, ok := mask.(map[string]any)
	return ok
}

// nonBoolScalar reports whether a mask node is a leaf that is not a
// boolean, i.e. a value Validate would reject.
func nonBoolScalar(mask any) bool {
	if mask == nil {
		return false
	}
	switch mask.(type) {
	case bool, map[string]any:
		return false
	}
	return true
}

// Canonicalize rewrites sequence-form mask nodes into wildcard maps,
// recursively: [m] becomes {_: m}. It mutates map nodes in place and
// returns the (possibly replaced) node. Malformed input passes through
// untouched; only Validate rejects it.
func Canonicalize(tree any) any {
	switch t := tree.(type) {
	case []any:
		if len(t) == 0 {
			return false
		}
		return map[string]any{Wildcard: Canonicalize(t[0])}
	case map[string]any:
		for k, v := range t {
			t[k] = Canonicalize(v)
		}
		return t
	default:
		return tree
	}
}

// Validate reports whether every leaf of a canonical mask tree is a
// boolean.
func Validate(tree any) bool {
	switch t := tree.(type) {
	case bool:
		return true
	case map[string]any:
		for _, v := range t {
			if !Validate(v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FromFieldList builds a mask tree from dotted paths, each mapping to
// true. Paths are applied longest first so that a shorter prefix path
// overwrites (and therefore subsumes) any longer path sharing it.
func FromFieldList(paths []string) any {
	ordered := make([]string, len(paths))
	copy(ordered, paths)
	// Longest first, stable, so a shorter prefix path lands last and wins.
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	tree := make(map[string]any)
	for _, p := range ordered {
		setTruePath(tree, p)
	}
	return tree
}

// setTruePath forces the path to true, replacing any non-map intermediate
// with a fresh node.
func setTruePath(tree map[string]any, path string) {
	segs := deepval.SplitPath(path)
	node := tree
	for _, seg := range segs[:len(segs)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[seg] = next
		}
		node = next
	}
	node[segs[len(segs)-1]] = true
}
