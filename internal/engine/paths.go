package engine

import (
	"fmt"

	"github.com/reoring/objmask/deepval"
)

// Resolve walks a dotted path through a canonical mask tree. Each segment
// prefers the exact key, then the wildcard slot, then false. A scalar
// node terminates the walk early: whatever has been reached is the
// answer, because scalars stop recursion regardless of remaining
// segments.
func Resolve(tree any, path string) any {
	cur := tree
	for _, seg := range deepval.SplitPath(path) {
		node, ok := cur.(map[string]any)
		if !ok {
			return cur
		}
		if v, ok := node[seg]; ok {
			cur = v
		} else if w, ok := node[Wildcard]; ok {
			cur = w
		} else {
			return false
		}
	}
	return cur
}

// CheckPath reports whether a path resolves to exactly true.
func CheckPath(tree any, path string) bool {
	v, ok := Resolve(tree, path).(bool)
	return ok && v
}

// AddField grants a path, replacing any falsy intermediate with a fresh
// node. It is a no-op when the path already checks true, so wildcard
// grants are left implicit. The (possibly replaced) tree is returned.
func AddField(tree any, path string) any {
	if CheckPath(tree, path) {
		return tree
	}
	root, ok := tree.(map[string]any)
	if !ok {
		root = make(map[string]any)
	}
	setTruePath(root, path)
	return root
}

// RemoveField revokes a path. Paths that are, or end in, the wildcard
// slot are rejected: a wildcard can only be overridden per concrete key,
// never removed. When the path is currently granted through wildcard
// inheritance, the wildcard's sub-mask is copied onto each concrete
// segment first so that revoking one inherited field leaves its siblings
// granted.
func RemoveField(tree any, path string) (any, *SimpleIssue) {
	segs := deepval.SplitPath(path)
	if len(segs) == 0 || segs[len(segs)-1] == Wildcard {
		return tree, &SimpleIssue{
			Path:    path,
			Code:    CodeWildcardRemoval,
			Message: fmt.Sprintf("objmask: cannot remove wildcard field %q", path),
		}
	}
	if !Truthy(Resolve(tree, path)) {
		return tree, nil
	}
	root, ok := tree.(map[string]any)
	if !ok {
		// Scalar true at the root: materialize so one field can be
		// revoked while everything else stays granted.
		root = map[string]any{Wildcard: true}
	}
	node := root
	for _, seg := range segs[:len(segs)-1] {
		node = materialize(node, seg)
	}
	node[segs[len(segs)-1]] = false
	return root, nil
}

// materialize ensures node[seg] is a concrete map the caller may mutate
// without affecting wildcard siblings, copying the inherited sub-mask
// when needed.
func materialize(node map[string]any, seg string) map[string]any {
	cur, ok := node[seg]
	if !ok {
		cur = deepval.Copy(node[Wildcard])
	}
	if m, ok := cur.(map[string]any); ok {
		node[seg] = m
		return m
	}
	// A boolean grant still covers deeper segments; expand it into a
	// wildcard node so only the target leaf changes.
	m := map[string]any{Wildcard: cur}
	node[seg] = m
	return m
}
