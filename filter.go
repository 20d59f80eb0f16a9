package objmask

import (
	"sort"

	eng "github.com/reoring/objmask/internal/engine"
)

// Filter copies v, keeping each field iff its resolved mask (concrete
// key, else wildcard) grants it: exactly true, or a map node over a
// container value. A map node over a scalar leaf excludes it, just as
// CheckPath rejects its flattened path. A field whose mask is exactly
// true is copied by reference: mutations of such a sub-value are visible
// through both the input and the result, which is part of the contract.
// Kept sequence elements are re-indexed contiguously.
func (m *Mask) Filter(v any) any {
	return eng.Filter(m.tree, v, nil)
}

// FilterWithCallback is Filter with masked-out reporting: onMaskedOut is
// invoked with the dotted path of each excluded branch, at the highest
// level the exclusion occurs. Nothing below an excluded branch is
// reported.
func (m *Mask) FilterWithCallback(v any, onMaskedOut func(path string)) any {
	return eng.Filter(m.tree, v, onMaskedOut)
}

// MaskedOutFields collects the paths a Filter pass would exclude, in
// sorted order.
func (m *Mask) MaskedOutFields(v any) []string {
	var out []string
	eng.Filter(m.tree, v, func(path string) { out = append(out, path) })
	sort.Strings(out)
	return out
}

// CheckFields reports whether filtering v would exclude nothing.
func (m *Mask) CheckFields(v any) bool {
	return len(m.MaskedOutFields(v)) == 0
}

// FilterDotted filters a pre-flattened dotted-path map (one entry per
// leaf) by checking each path against the mask. On a well-formed mask the
// kept set matches Filter on the unflattened value, without the recursive
// descent.
func (m *Mask) FilterDotted(dotted map[string]any) map[string]any {
	return eng.FilterDotted(m.tree, dotted, nil)
}

// DottedMaskedOutFields collects the dotted keys FilterDotted would
// exclude, in sorted order.
func (m *Mask) DottedMaskedOutFields(dotted map[string]any) []string {
	var out []string
	eng.FilterDotted(m.tree, dotted, func(path string) { out = append(out, path) })
	sort.Strings(out)
	return out
}

// CheckDottedFields reports whether FilterDotted would exclude nothing.
func (m *Mask) CheckDottedFields(dotted map[string]any) bool {
	return len(m.DottedMaskedOutFields(dotted)) == 0
}

// FilterFunc returns Filter bound to the mask, for use as a pluggable
// transform.
func (m *Mask) FilterFunc() func(v any) any {
	return func(v any) any { return m.Filter(v) }
}
