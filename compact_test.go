package nestwalk_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	nestwalk "github.com/reoring/nestwalk"
)

func TestCompact(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"runs collapse, repeats stay", []int{1, 1, 2, 1, 1, 1, 2, 4, 3, 1, 1, 1, 4, 4}, []int{1, 2, 1, 2, 4, 3, 1, 4}},
		{"empty", []int{}, []int{}},
		{"nil", nil, []int{}},
		{"single", []int{7}, []int{7}},
		{"all equal", []int{5, 5, 5}, []int{5}},
		{"no repeats", []int{1, 2, 3}, []int{1, 2, 3}},
		{"trailing zero run kept", []int{1, 0, 0}, []int{1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nestwalk.Compact(tc.in)
			if got == nil {
				t.Fatalf("Compact returned nil slice")
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompact_TrailingFalseRun(t *testing.T) {
	got := nestwalk.Compact([]bool{true, false, false})
	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompact_InputUntouched(t *testing.T) {
	in := []string{"a", "a", "b"}
	_ = nestwalk.Compact(in)
	if diff := cmp.Diff([]string{"a", "a", "b"}, in); diff != "" {
		t.Fatalf("input modified (-want +got):\n%s", diff)
	}
	if len(in) != 3 || cap(in) != 3 {
		t.Fatalf("input header changed: len=%d cap=%d", len(in), cap(in))
	}
}

type names []string

func TestCompact_NamedSliceType(t *testing.T) {
	got := nestwalk.Compact(names{"x", "x", "y"})
	var _ names = got
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %v", got)
	}
}

func TestCompactFunc(t *testing.T) {
	got := nestwalk.CompactFunc([]string{"Go", "GO", "go", "rust", "Go"}, strings.EqualFold)
	if diff := cmp.Diff([]string{"Go", "rust", "Go"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactSeq(t *testing.T) {
	got := slices.Collect(nestwalk.CompactSeq(slices.Values([]int{1, 1, 2, 2, 1})))
	if diff := cmp.Diff([]int{1, 2, 1}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	var first []int
	for v := range nestwalk.CompactSeq(slices.Values([]int{3, 3, 4, 5})) {
		first = append(first, v)
		break
	}
	if diff := cmp.Diff([]int{3}, first); diff != "" {
		t.Fatalf("early stop mismatch (-want +got):\n%s", diff)
	}
}

func TestRuns(t *testing.T) {
	in := []int{1, 1, 2, 1, 1, 1, 2, 4, 3, 1, 1, 1, 4, 4}
	got := nestwalk.Runs(in)
	want := []nestwalk.Run[int]{
		{Value: 1, Count: 2},
		{Value: 2, Count: 1},
		{Value: 1, Count: 3},
		{Value: 2, Count: 1},
		{Value: 4, Count: 1},
		{Value: 3, Count: 1},
		{Value: 1, Count: 3},
		{Value: 4, Count: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	values := make([]int, len(got))
	total := 0
	for i, r := range got {
		values[i] = r.Value
		total += r.Count
	}
	if diff := cmp.Diff(nestwalk.Compact(in), values); diff != "" {
		t.Fatalf("run values differ from Compact (-want +got):\n%s", diff)
	}
	if total != len(in) {
		t.Fatalf("run counts sum to %d, want %d", total, len(in))
	}
	if r := nestwalk.Runs([]int(nil)); r == nil || len(r) != 0 {
		t.Fatalf("expected empty non-nil runs, got %v", r)
	}
}
