// Package deepval implements generic deep-structural operations over
// untyped values built from map[string]any, []any and scalars. It is the
// value layer the mask engine in the root package is built on, but it is
// useful on its own for callers that manipulate schema-less data.
//
// The value model is the one produced by decoding JSON or YAML into any:
// nil, bool, string, numeric types (including json.Number), time.Time,
// func values, []any and map[string]any. Maps and slices are containers;
// everything else is scalar and treated as atomic by every traversal.
//
// Cyclic values are not supported: none of the functions in this package
// detect cycles, and passing one will exhaust the call stack.
package deepval

import (
	"reflect"
	"time"
)

// IsScalar reports whether v terminates recursion. nil, func values and
// time.Time count as scalars; map[string]any and []any do not.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case map[string]any, []any:
		return false
	case time.Time, *time.Time:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice:
		return false
	}
	return true
}

// Equal compares two values structurally. Maps are compared key-by-key
// regardless of iteration order, slices element-by-element in order, and
// time.Time values (pointer or not) by instant. Other scalars compare by
// identity; two func values are equal only when they are the same
// function.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, x := range av {
			y, ok := bv[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case *time.Time:
		bv, ok := b.(*time.Time)
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			return av == bv
		}
		return av.Equal(*bv)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Func || rb.Kind() == reflect.Func {
		return ra.Kind() == rb.Kind() && ra.Pointer() == rb.Pointer()
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}

// Copy returns a deep copy of v. Containers are rebuilt recursively;
// scalars are shared, which is safe because the value model treats them
// as immutable.
func Copy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Copy(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = Copy(vv)
		}
		return out
	default:
		return v
	}
}
