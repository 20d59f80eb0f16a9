package deepval

import (
	"strconv"
	"strings"
)

// SplitPath splits a dotted path into its segments. The empty path yields
// no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// JoinPath appends a segment to a dotted path prefix.
func JoinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}

// Flatten maps every leaf of v to its dotted path. Slice positions become
// decimal segments. Empty containers are recorded as leaves so the result
// round-trips through SetPath.
func Flatten(v any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", v)
	return out
}

func flattenInto(out map[string]any, prefix string, v any) {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 && prefix != "" {
			out[prefix] = t
			return
		}
		for k, vv := range t {
			flattenInto(out, JoinPath(prefix, k), vv)
		}
	case []any:
		if len(t) == 0 && prefix != "" {
			out[prefix] = t
			return
		}
		for i, vv := range t {
			flattenInto(out, JoinPath(prefix, strconv.Itoa(i)), vv)
		}
	default:
		out[prefix] = v
	}
}

// GetPath resolves a dotted path against v. The second result reports
// whether every segment resolved.
func GetPath(v any, path string) (any, bool) {
	cur := v
	for _, seg := range SplitPath(path) {
		switch t := cur.(type) {
		case map[string]any:
			next, ok := t[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(t) {
				return nil, false
			}
			cur = t[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// SetPath writes value at a dotted path, creating intermediate maps as
// needed, and returns the (possibly replaced) root. Slice elements can be
// overwritten in place but slices are never grown; an out-of-range index
// leaves v unchanged. Intermediate scalars are replaced by maps.
func SetPath(v any, path string, value any) any {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return value
	}
	root, ok := v.(map[string]any)
	if !ok {
		if s, isSlice := v.([]any); isSlice {
			setPathSlice(s, segs, value)
			return v
		}
		root = make(map[string]any)
	}
	setPathMap(root, segs, value)
	return root
}

func setPathMap(m map[string]any, segs []string, value any) {
	if len(segs) == 1 {
		m[segs[0]] = value
		return
	}
	switch t := m[segs[0]].(type) {
	case map[string]any:
		setPathMap(t, segs[1:], value)
	case []any:
		setPathSlice(t, segs[1:], value)
	default:
		next := make(map[string]any)
		m[segs[0]] = next
		setPathMap(next, segs[1:], value)
	}
}

func setPathSlice(s []any, segs []string, value any) {
	i, err := strconv.Atoi(segs[0])
	if err != nil || i < 0 || i >= len(s) {
		return
	}
	if len(segs) == 1 {
		s[i] = value
		return
	}
	switch t := s[i].(type) {
	case map[string]any:
		setPathMap(t, segs[1:], value)
	case []any:
		setPathSlice(t, segs[1:], value)
	default:
		next := make(map[string]any)
		s[i] = next
		setPathMap(next, segs[1:], value)
	}
}

// DeletePath removes the entry addressed by a dotted path. Map entries are
// deleted outright. A slice element is set to nil because the parent slice
// header cannot be shrunk through an alias. It reports whether anything
// was removed.
func DeletePath(v any, path string) bool {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return false
	}
	parent, ok := v, true
	if len(segs) > 1 {
		parent, ok = GetPath(v, strings.Join(segs[:len(segs)-1], "."))
		if !ok {
			return false
		}
	}
	last := segs[len(segs)-1]
	switch t := parent.(type) {
	case map[string]any:
		if _, ok := t[last]; !ok {
			return false
		}
		delete(t, last)
		return true
	case []any:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i >= len(t) {
			return false
		}
		t[i] = nil
		return true
	}
	return false
}
