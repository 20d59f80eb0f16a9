// Package objmask provides:
//
// - Recursive field masks (whitelist/blacklist permission trees) over untyped nested values
// - Mask algebra (Add/And/Subtract/Invert) with exact wildcard-absorption semantics
// - Deep filtering of values and pre-flattened dotted maps, with masked-out reporting
// - Value primitives (deep equality/copy/merge/diff, structural hashing) under deepval/
//
// Design policy:
// - Keep only public APIs in the root package; put the recursion under internal/engine.
// - Place value primitives under deepval/ and the CLI under cmd/objmask.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	m := objmask.New(map[string]any{"name": true, "address": map[string]any{"_": true, "secret": false}})
//	visible := m.Filter(record)
//	ok := m.CheckPath("address.city")
//
//	granted := objmask.Add(adminMask.Clone(), auditorMask.Clone())
//
// Mask trees are exclusively owned by their Mask wrapper. The algebra
// combinators consume their operands' trees and mutate them in place;
// Clone first when an operand must survive. Cyclic values are not
// supported anywhere in this module: they are not detected and will
// exhaust the call stack.
package objmask
