package deepval_test

import (
	"reflect"
	"testing"

	"github.com/reoring/objmask/deepval"
)

func TestDiff(t *testing.T) {
	a := map[string]any{
		"same": 1,
		"leaf": "x",
		"nest": map[string]any{"k": 1, "j": 2},
	}
	b := map[string]any{
		"same": 1,
		"leaf": "y",
		"nest": map[string]any{"k": 9, "j": 2},
	}
	got := deepval.Diff(a, b)
	want := map[string]any{
		"leaf": []any{"x", "y"},
		"nest": map[string]any{"k": []any{1, 9}},
	}
	if !deepval.Equal(got, want) {
		t.Fatalf("Diff mismatch: got %v want %v", got, want)
	}
}

func TestDiff_NAry(t *testing.T) {
	got := deepval.Diff(
		map[string]any{"v": 1},
		map[string]any{"v": 2},
		map[string]any{"v": 3},
	)
	want := map[string]any{"v": []any{1, 2, 3}}
	if !deepval.Equal(got, want) {
		t.Fatalf("n-ary Diff mismatch: got %v want %v", got, want)
	}
}

func TestDiff_AbsentKeysContributeNil(t *testing.T) {
	got := deepval.Diff(map[string]any{"only": 1}, map[string]any{})
	want := map[string]any{"only": []any{1, nil}}
	if !deepval.Equal(got, want) {
		t.Fatalf("Diff mismatch: got %v want %v", got, want)
	}
}

func TestDiff_EqualValuesEmpty(t *testing.T) {
	v := map[string]any{"a": map[string]any{"b": []any{1, 2}}}
	got, ok := deepval.Diff(v, deepval.Copy(v)).(map[string]any)
	if !ok || len(got) != 0 {
		t.Fatalf("equal maps must diff to an empty map, got %v", got)
	}
}

func TestDiff_NonMapRoot(t *testing.T) {
	if got := deepval.Diff(1, 2, 3); !deepval.Equal(got, []any{1, 2, 3}) {
		t.Fatalf("diverging non-map operands must yield the value sequence, got %v", got)
	}
	if got := deepval.Diff(map[string]any{"a": 1}, "scalar"); !deepval.Equal(got, []any{map[string]any{"a": 1}, "scalar"}) {
		t.Fatalf("mixed-shape operands must yield the value sequence, got %v", got)
	}
	if got := deepval.Diff("x", "x"); got != nil {
		t.Fatalf("agreeing non-map operands must diff to nil, got %v", got)
	}
}

func TestDiffDotted(t *testing.T) {
	a := map[string]any{
		"same":  1,
		"leaf":  "x",
		"nest":  map[string]any{"deep": map[string]any{"k": 1}},
		"gone":  true,
		"whole": map[string]any{"p": 1},
	}
	b := map[string]any{
		"same":  1,
		"leaf":  "y",
		"nest":  map[string]any{"deep": map[string]any{"k": 2}},
		"added": true,
		"whole": "scalar now",
	}
	got := deepval.DiffDotted(a, b)
	want := []string{"added", "gone", "leaf", "nest.deep.k", "whole"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DiffDotted mismatch: got %v want %v", got, want)
	}
}

func TestDiffDotted_StopsAtShallowestDivergence(t *testing.T) {
	a := map[string]any{"n": map[string]any{"x": 1, "y": 2}}
	b := map[string]any{"n": "flat"}
	got := deepval.DiffDotted(a, b)
	if !reflect.DeepEqual(got, []string{"n"}) {
		t.Fatalf("divergence must be reported at the shallowest path only: got %v", got)
	}
}
