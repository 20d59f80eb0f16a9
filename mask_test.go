package objmask_test

import (
	"testing"
	"time"

	objmask "github.com/reoring/objmask"
	"github.com/reoring/objmask/deepval"
)

func TestNew_CanonicalizesSequences(t *testing.T) {
	m := objmask.New(map[string]any{
		"tags": []any{map[string]any{"name": true}},
	})
	want := map[string]any{
		"tags": map[string]any{"_": map[string]any{"name": true}},
	}
	if !deepval.Equal(m.Tree(), want) {
		t.Fatalf("canonical tree mismatch: got %v want %v", m.Tree(), want)
	}
}

func TestNew_DeepCopiesInput(t *testing.T) {
	src := map[string]any{"a": map[string]any{"b": true}}
	m := objmask.New(src)
	src["a"].(map[string]any)["b"] = false
	if !m.CheckPath("a.b") {
		t.Fatalf("mask must not alias the input tree")
	}
}

func TestFromFieldList_PrefixWins(t *testing.T) {
	m := objmask.FromFieldList([]string{"foo", "bar.baz", "bar.baz.biz"})
	want := map[string]any{
		"foo": true,
		"bar": map[string]any{"baz": true},
	}
	if !deepval.Equal(m.Tree(), want) {
		t.Fatalf("field list tree mismatch: got %v want %v", m.Tree(), want)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		tree any
		want bool
	}{
		{"booleans only", map[string]any{"a": true, "b": map[string]any{"_": false}}, true},
		{"scalar true", true, true},
		{"string leaf", map[string]any{"a": "yes"}, false},
		{"date leaf", map[string]any{"a": time.Now()}, false},
		{"nested bad leaf", map[string]any{"a": map[string]any{"b": 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := objmask.New(tc.tree).Validate(); got != tc.want {
				t.Fatalf("Validate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	m := objmask.New(map[string]any{"a": true})
	c := m.Clone()
	c.AddField("b")
	if m.CheckPath("b") {
		t.Fatalf("mutating a clone must not affect the original")
	}
	if !c.CheckPath("b") {
		t.Fatalf("clone lost its own mutation")
	}
}

func TestSubMask(t *testing.T) {
	m := objmask.New(map[string]any{
		"_":   map[string]any{"a": true},
		"obj": map[string]any{"b": true},
	})

	if got := m.SubMask("obj").Tree(); !deepval.Equal(got, map[string]any{"b": true}) {
		t.Fatalf("concrete key should win: got %v", got)
	}
	if got := m.SubMask("other").Tree(); !deepval.Equal(got, map[string]any{"a": true}) {
		t.Fatalf("wildcard fallback failed: got %v", got)
	}
	if got := m.SubMask("obj.b.deeper").Tree(); got != true {
		t.Fatalf("scalar node must end the walk early: got %v", got)
	}
	none := objmask.New(map[string]any{"x": true})
	if got := none.SubMask("y").Tree(); got != false {
		t.Fatalf("missing key without wildcard must resolve to false: got %v", got)
	}
}

func TestCheckPath(t *testing.T) {
	m := objmask.New(map[string]any{
		"a": true,
		"b": map[string]any{"c": true},
		"d": false,
	})
	for path, want := range map[string]bool{
		"a":   true,
		"b.c": true,
		"b":   false, // resolves to a map, not exactly true
		"d":   false,
		"e":   false,
	} {
		if got := m.CheckPath(path); got != want {
			t.Fatalf("CheckPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestAddField(t *testing.T) {
	m := objmask.New(map[string]any{"_": true})
	before := m.Clone().Tree()
	m.AddField("foo")
	if !deepval.Equal(m.Tree(), before) {
		t.Fatalf("AddField must be a no-op for wildcard-granted paths: got %v", m.Tree())
	}

	m2 := objmask.New(map[string]any{"a": false})
	m2.AddField("a.b").AddField("c")
	if !m2.CheckPath("a.b") || !m2.CheckPath("c") {
		t.Fatalf("AddField did not grant the requested paths: %v", m2.Tree())
	}
}

func TestRemoveField_WildcardRejected(t *testing.T) {
	m := objmask.New(map[string]any{"_": true})
	for _, path := range []string{"_", "a._"} {
		err := m.RemoveField(path)
		if err == nil {
			t.Fatalf("RemoveField(%q) must fail", path)
		}
		iss, ok := objmask.AsIssues(err)
		if !ok || iss[0].Code != objmask.CodeWildcardRemoval {
			t.Fatalf("expected wildcard_removal, got %v", err)
		}
	}
}

func TestRemoveField_MaterializesWildcard(t *testing.T) {
	m := objmask.New(map[string]any{
		"_": map[string]any{"a": true, "b": true},
	})
	if err := m.RemoveField("x.a"); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if m.CheckPath("x.a") {
		t.Fatalf("x.a should be revoked")
	}
	if !m.CheckPath("x.b") {
		t.Fatalf("sibling x.b inherited from the wildcard must stay granted")
	}
	if !m.CheckPath("y.a") {
		t.Fatalf("other wildcard-derived fields must be unaffected")
	}
}

func TestRemoveField_ExpandsBooleanGrant(t *testing.T) {
	m := objmask.New(map[string]any{"a": true})
	if err := m.RemoveField("a.b"); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if m.CheckPath("a.b") {
		t.Fatalf("a.b should be revoked")
	}
	if !m.CheckPath("a.c") {
		t.Fatalf("the rest of a must stay granted")
	}
}

func TestRemoveField_NoopWhenDenied(t *testing.T) {
	m := objmask.New(map[string]any{"a": true})
	before := m.Clone().Tree()
	if err := m.RemoveField("b"); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if !deepval.Equal(m.Tree(), before) {
		t.Fatalf("removing an already-denied field must not change the tree: %v", m.Tree())
	}
}
