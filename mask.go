package objmask

import (
	"github.com/reoring/objmask/deepval"
	eng "github.com/reoring/objmask/internal/engine"
)

// Wildcard is the reserved key whose sub-mask applies to every field not
// explicitly listed in the same node.
const Wildcard = eng.Wildcard

// Mask is a recursive permission tree over the shape of a value. Leaves
// are booleans (true grants, false or absence denies) and interior nodes
// map field names to sub-masks, with the Wildcard key covering unlisted
// fields. The tree is exclusively owned by its Mask; it is never shared
// with callers except through Tree.
type Mask struct {
	tree any
}

// New builds a Mask from a literal permission tree. The input is
// deep-copied, then canonicalized: a sequence node [m] becomes {_: m},
// recursively. Malformed trees (non-boolean scalar leaves) are accepted
// silently and only surface through Validate.
func New(tree any) *Mask {
	return &Mask{tree: eng.Canonicalize(deepval.Copy(tree))}
}

// FromFieldList builds a Mask granting exactly the given dotted paths.
// Paths are applied longest first, so a shorter path subsumes any longer
// path sharing its prefix.
func FromFieldList(paths []string) *Mask {
	return &Mask{tree: eng.FromFieldList(paths)}
}

// adopt wraps an engine-produced tree without copying. The caller must
// guarantee exclusive ownership.
func adopt(tree any) *Mask { return &Mask{tree: tree} }

// Tree returns the canonical mask tree. The tree is owned by the Mask;
// callers must treat it as read-only.
func (m *Mask) Tree() any { return m.tree }

// Clone returns an independent deep copy of the mask.
func (m *Mask) Clone() *Mask { return &Mask{tree: deepval.Copy(m.tree)} }

// Validate reports whether every leaf of the mask is a boolean. A mask
// holding any other scalar leaf (a date, a function) is malformed as a
// whole. Construction never rejects such trees; call Validate when the
// input's provenance is untrusted.
func (m *Mask) Validate() bool { return eng.Validate(m.tree) }

// SubMask resolves a dotted path and returns a new Mask over the reached
// sub-tree. Each segment prefers the concrete key and falls back to the
// wildcard slot; a missing segment resolves to false, and a scalar node
// ends the walk early. The result is detached from the receiver.
func (m *Mask) SubMask(path string) *Mask {
	return New(eng.Resolve(m.tree, path))
}

// CheckPath reports whether path resolves to exactly true.
func (m *Mask) CheckPath(path string) bool {
	return eng.CheckPath(m.tree, path)
}

// AddField grants a dotted path and returns the receiver for chaining.
// It is a no-op when CheckPath(path) already holds.
func (m *Mask) AddField(path string) *Mask {
	m.tree = eng.AddField(m.tree, path)
	return m
}

// RemoveField revokes a dotted path in place. It fails with
// CodeWildcardRemoval when the path is, or ends in, the wildcard slot:
// a wildcard can only be overridden per concrete key. Revoking a field
// granted through wildcard inheritance materializes the inherited
// sub-mask onto the concrete key first, so siblings keep their grant.
func (m *Mask) RemoveField(path string) error {
	tree, si := eng.RemoveField(m.tree, path)
	if si != nil {
		return fromEngineIssue(si)
	}
	m.tree = tree
	return nil
}
