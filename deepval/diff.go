package deepval

import "sort"

// Diff compares any number of values and reports where they disagree. The
// result mirrors the input structure: when every operand is a map the
// result is a map where keys on which all operands agree are omitted,
// keys whose values are all maps recurse, and any other disagreement
// becomes a []any holding each operand's value (absent keys contribute
// nil). Maps that all agree produce an empty map. When the operands are
// not all maps, a disagreement yields the []any of operand values
// directly, and agreement yields nil.
func Diff(objs ...any) any {
	if len(objs) < 2 || allEqual(objs) {
		if allMapValues(objs) {
			return map[string]any{}
		}
		return nil
	}
	if !allMapValues(objs) {
		return append([]any(nil), objs...)
	}
	keys := make(map[string]struct{})
	for _, o := range objs {
		for k := range o.(map[string]any) {
			keys[k] = struct{}{}
		}
	}
	out := make(map[string]any)
	for k := range keys {
		vals := make([]any, len(objs))
		for i, o := range objs {
			vals[i] = o.(map[string]any)[k]
		}
		if allEqual(vals) {
			continue
		}
		if allMapValues(vals) {
			out[k] = Diff(vals...)
			continue
		}
		out[k] = vals
	}
	return out
}

// DiffDotted returns the sorted set of shallowest dotted paths at which a
// and b diverge. Once a divergence is confirmed at a path, nothing below
// it is reported. A divergence at the root is reported as the empty path.
func DiffDotted(a, b any) []string {
	var paths []string
	diffDotted(&paths, "", a, b)
	sort.Strings(paths)
	return paths
}

func diffDotted(paths *[]string, prefix string, a, b any) {
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	if aok && bok {
		for k := range am {
			diffDotted(paths, JoinPath(prefix, k), am[k], bm[k])
		}
		for k := range bm {
			if _, seen := am[k]; !seen {
				*paths = append(*paths, JoinPath(prefix, k))
			}
		}
		return
	}
	if !Equal(a, b) {
		*paths = append(*paths, prefix)
	}
}

func allEqual(vals []any) bool {
	for _, v := range vals[1:] {
		if !Equal(vals[0], v) {
			return false
		}
	}
	return true
}

func allMapValues(vals []any) bool {
	for _, v := range vals {
		if _, ok := v.(map[string]any); !ok {
			return false
		}
	}
	return true
}
