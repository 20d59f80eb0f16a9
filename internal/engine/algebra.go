package engine

import (
	"fmt"
	"sort"

	"github.com/reoring/objmask/deepval"
)

// The combinators below take ownership of their operand trees: the left
// operand doubles as the accumulator and is mutated in place, and pieces
// of the right operand may be adopted into the result. Callers that need
// an operand to survive must pass a deep copy.

// Add ORs mask trees left to right. A field is granted when any operand
// grants it.
func Add(trees ...any) any {
	acc := trees[0]
	for _, t := range trees[1:] {
		acc = addPair(acc, t)
		if b, ok := acc.(bool); ok && b {
			return true
		}
	}
	return acc
}

func addPair(a, b any) any {
	if isTrue(a) || isTrue(b) {
		return true
	}
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	switch {
	case !aok && !bok:
		return false
	case !aok:
		return bm
	case !bok:
		return am
	}
	for k, bv := range bm {
		if av, ok := am[k]; ok {
			am[k] = addPair(av, bv)
		} else {
			am[k] = bv
		}
	}
	absorbIntoWildcard(am)
	return am
}

// absorbIntoWildcard drops every concrete key whose mask deep-equals the
// wildcard's: the wildcard already grants it, so the explicit entry is
// redundant.
func absorbIntoWildcard(node map[string]any) {
	w, ok := node[Wildcard]
	if !ok {
		return
	}
	for k, v := range node {
		if k != Wildcard && deepval.Equal(v, w) {
			delete(node, k)
		}
	}
}

// And ANDs mask trees left to right. A field is granted only when every
// operand grants it.
func And(trees ...any) any {
	acc := trees[0]
	for _, t := range trees[1:] {
		acc = andPair(acc, t)
		if !Truthy(acc) {
			return false
		}
	}
	return acc
}

func andPair(a, b any) any {
	if isTrue(a) {
		return b
	}
	if isTrue(b) {
		return a
	}
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	if !aok || !bok {
		return false
	}
	aw, hasAW := am[Wildcard]
	bw, hasBW := bm[Wildcard]
	for _, k := range concreteKeyUnion(am, bm) {
		av, ok := am[k]
		if !ok {
			// Inherited values are copied before combining because
			// andPair consumes what it is given and the wildcard
			// must serve every missing key.
			if !hasAW {
				delete(am, k)
				continue
			}
			av = deepval.Copy(aw)
		}
		bv, ok := bm[k]
		if !ok {
			if !hasBW {
				delete(am, k)
				continue
			}
			bv = deepval.Copy(bw)
		}
		r := andPair(av, bv)
		if Truthy(r) {
			am[k] = r
		} else {
			delete(am, k)
		}
	}
	if hasAW && hasBW {
		if w := andPair(aw, bw); Truthy(w) {
			am[Wildcard] = w
		} else {
			delete(am, Wildcard)
		}
	} else {
		delete(am, Wildcard)
	}
	if len(am) == 0 {
		return false
	}
	return am
}

// Subtract revokes from the minuend everything the subtrahend grants.
// It errors when either side carries a non-boolean scalar at a node both
// trees share: only boolean leaves are subtractable.
func Subtract(minuend any, subtrahends ...any) (any, *SimpleIssue) {
	acc := minuend
	for _, t := range subtrahends {
		var iss *SimpleIssue
		acc, iss = subtractPair(acc, t, "")
		if iss != nil {
			return nil, iss
		}
	}
	return acc, nil
}

func subtractPair(a, b any, path string) (any, *SimpleIssue) {
	if nonBoolScalar(a) || nonBoolScalar(b) {
		return nil, &SimpleIssue{
			Path:    path,
			Code:    CodeInvalidOperation,
			Message: fmt.Sprintf("objmask: cannot subtract non-boolean mask leaf at %q", path),
		}
	}
	switch {
	case isTrue(b):
		return false, nil
	case !Truthy(b):
		return a, nil
	case !Truthy(a):
		// Nothing explicit to revoke here; the explicit denial of the
		// subtrahend's grants is its inverse.
		return Invert(b), nil
	case deepval.Equal(a, b):
		return false, nil
	case isTrue(a):
		return Invert(b), nil
	}
	am := a.(map[string]any)
	bm := b.(map[string]any)
	for k, bv := range bm {
		r, iss := subtractPair(am[k], bv, deepval.JoinPath(path, k))
		if iss != nil {
			return nil, iss
		}
		am[k] = r
	}
	sanitizeFalsies(am)
	if len(am) == 0 {
		return false, nil
	}
	return am, nil
}

// sanitizeFalsies prunes falsy concrete keys when no wildcard exists;
// without a wildcard to override, an explicit false is already the
// default.
func sanitizeFalsies(node map[string]any) {
	if _, ok := node[Wildcard]; ok {
		return
	}
	for k, v := range node {
		if !Truthy(v) {
			delete(node, k)
		}
	}
}

// Invert swaps granted and denied at every leaf. Each map node gains an
// explicit wildcard so that previously-unlisted fields flip from denied
// to granted; a wildcard whose inversion is false is dropped instead,
// since absence already denies.
func Invert(tree any) any {
	switch t := tree.(type) {
	case bool:
		return !t
	case map[string]any:
		out := make(map[string]any, len(t)+1)
		for k, v := range t {
			out[k] = Invert(v)
		}
		if w, ok := out[Wildcard]; !ok {
			out[Wildcard] = true
		} else if !Truthy(w) {
			delete(out, Wildcard)
		}
		return out
	default:
		// Malformed scalar leaves deny after inversion; only absence
		// (nil) flips to a grant.
		return tree == nil
	}
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// concreteKeyUnion collects the non-wildcard keys of both nodes in a
// deterministic order.
func concreteKeyUnion(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	delete(seen, Wildcard)
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
