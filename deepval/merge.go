package deepval

import "reflect"

// Skip marks a source entry that Merge must ignore, distinguishing
// "leave the destination alone" from "overwrite with nil".
var Skip any = skipSentinel{}

type skipSentinel struct{}

// Customizer lets MergeWith callers override the decision for a single
// key. Returning handled=false falls back to the default merge rule.
type Customizer func(dst, src any, key string) (merged any, handled bool)

// Merge merges every source map into dst, left to right, and returns dst.
// Nested maps are merged recursively; any other collision is resolved by
// overwriting the destination with the source value. Source entries equal
// to Skip are ignored.
func Merge(dst map[string]any, srcs ...map[string]any) map[string]any {
	return MergeWith(nil, dst, srcs...)
}

// MergeWith is Merge with a per-key Customizer. It also supports the
// reduce idiom where dst itself appears among srcs: in that case all
// sources are merged into a fresh map first so the accumulator is never
// merged into itself.
func MergeWith(fn Customizer, dst map[string]any, srcs ...map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range srcs {
		if sameMap(dst, src) {
			fresh := make(map[string]any, len(dst))
			mergeInto(fn, fresh, dst)
			for _, s := range srcs {
				mergeInto(fn, fresh, s)
			}
			return fresh
		}
	}
	for _, src := range srcs {
		mergeInto(fn, dst, src)
	}
	return dst
}

func mergeInto(fn Customizer, dst, src map[string]any) {
	for k, sv := range src {
		if _, skip := sv.(skipSentinel); skip {
			continue
		}
		dv, exists := dst[k]
		if fn != nil {
			if merged, handled := fn(dv, sv, k); handled {
				dst[k] = merged
				continue
			}
		}
		dm, dok := dv.(map[string]any)
		sm, sok := sv.(map[string]any)
		if exists && dok && sok {
			mergeInto(fn, dm, sm)
			continue
		}
		dst[k] = sv
	}
}

func sameMap(a, b map[string]any) bool {
	return a != nil && b != nil &&
		reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
