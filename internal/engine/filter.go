package engine

import (
	"sort"
	"strconv"

	"github.com/reoring/objmask/deepval"
)

// Filter copies v through a canonical mask tree. A key survives iff its
// resolved mask (exact key, else wildcard) grants it: exactly true, or a
// map node when the value can be recursed into. A map mask over a scalar
// leaf denies it, exactly as CheckPath denies the flattened path. A mask
// of exactly true copies the value by reference; callers that mutate the
// result therefore mutate the input. onMaskedOut, when non-nil, is
// invoked once per excluded branch with the dotted path of the highest
// excluded node; nothing below an excluded branch is visited.
func Filter(mask any, v any, onMaskedOut func(path string)) any {
	return filterNode(mask, v, "", onMaskedOut)
}

func filterNode(mask any, v any, path string, cb func(string)) any {
	if b, ok := mask.(bool); ok {
		if b {
			return v
		}
		return nil
	}
	node, ok := mask.(map[string]any)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for _, k := range sortedKeys(val) {
			sub, found := node[k]
			if !found {
				sub = node[Wildcard]
			}
			p := deepval.JoinPath(path, k)
			if excludes(sub, val[k]) {
				if cb != nil {
					cb(p)
				}
				continue
			}
			out[k] = filterNode(sub, val[k], p, cb)
		}
		return out
	case []any:
		// Canonical masks address positions through the wildcard, but
		// a concrete decimal key still wins when present. Kept
		// elements re-index contiguously.
		out := make([]any, 0, len(val))
		for i, vv := range val {
			k := strconv.Itoa(i)
			sub, found := node[k]
			if !found {
				sub = node[Wildcard]
			}
			p := deepval.JoinPath(path, k)
			if excludes(sub, vv) {
				if cb != nil {
					cb(p)
				}
				continue
			}
			out = append(out, filterNode(sub, vv, p, cb))
		}
		return out
	default:
		// A map mask cannot recurse into a scalar; denying the leaf
		// keeps Filter in agreement with CheckPath on its flattened
		// path.
		if cb != nil {
			cb(path)
		}
		return nil
	}
}

// excludes reports whether a resolved mask denies a value outright: a
// falsy mask always does, and a map mask denies a scalar because there
// is nothing left to recurse into.
func excludes(sub any, v any) bool {
	if !Truthy(sub) {
		return true
	}
	if isTrue(sub) {
		return false
	}
	return deepval.IsScalar(v)
}

// sortedKeys gives filtering (and thus masked-out callbacks) a
// deterministic order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilterDotted keeps the entries of a pre-flattened dotted map whose
// paths check true, which matches Filter on the unflattened value when
// the mask is well formed.
func FilterDotted(tree any, dotted map[string]any, onMaskedOut func(path string)) map[string]any {
	out := make(map[string]any, len(dotted))
	for _, k := range sortedKeys(dotted) {
		if CheckPath(tree, k) {
			out[k] = dotted[k]
			continue
		}
		if onMaskedOut != nil {
			onMaskedOut(k)
		}
	}
	return out
}
