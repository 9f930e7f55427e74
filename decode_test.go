package nestwalk_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	nestwalk "github.com/reoring/nestwalk"
)

func TestDecode_KeepsDocumentOrder(t *testing.T) {
	v, err := nestwalk.Decode(context.Background(), nestwalk.JSONBytes([]byte(`{"z":1,"a":[true,null,"s"],"m":{"k":2}}`)))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	m, ok := v.(*nestwalk.OrderedMap)
	if !ok {
		t.Fatalf("expected *OrderedMap, got %T", v)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, m.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	a, _ := m.Get("a")
	if diff := cmp.Diff([]any{true, nil, "s"}, a); diff != "" {
		t.Fatalf("array mismatch (-want +got):\n%s", diff)
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"z":1,"a":[true,null,"s"],"m":{"k":2}}` {
		t.Fatalf("unexpected encoding: %s", b)
	}
}

func TestDecode_ToPlain(t *testing.T) {
	v, err := nestwalk.Decode(context.Background(), nestwalk.JSONBytes([]byte(`{"a":[{"b":1}]}`)))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := map[string]any{"a": []any{map[string]any{"b": json.Number("1")}}}
	if diff := cmp.Diff(want, nestwalk.ToPlain(v)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_YAMLMultiDocument(t *testing.T) {
	v, err := nestwalk.Decode(context.Background(), nestwalk.YAMLBytes([]byte("a: 1\n---\n- x\n- y\n")))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	docs, ok := v.([]any)
	if !ok || len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %#v", v)
	}
	if diff := cmp.Diff([]any{"x", "y"}, docs[1]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opt  nestwalk.WalkOpt
		code string
	}{
		{"empty", ``, nestwalk.WalkOpt{}, nestwalk.CodeParseError},
		{"truncated object", `{"a":`, nestwalk.WalkOpt{}, nestwalk.CodeParseError},
		{"duplicate", `{"a":1,"a":2}`, nestwalk.WalkOpt{Duplicates: nestwalk.Error}, nestwalk.CodeDuplicateKey},
		{"warn plus failfast", `{"a":1,"a":2}`, nestwalk.WalkOpt{Duplicates: nestwalk.Warn, FailFast: true}, nestwalk.CodeDuplicateKey},
		{"depth", `[[[]]]`, nestwalk.WalkOpt{MaxDepth: 2}, nestwalk.CodeMaxDepth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nestwalk.Decode(context.Background(), nestwalk.JSONBytes([]byte(tc.in)), tc.opt)
			iss, ok := nestwalk.AsIssues(err)
			if !ok || len(iss) == 0 {
				t.Fatalf("expected Issues, got %v", err)
			}
			if iss[0].Code != tc.code {
				t.Fatalf("expected %s, got %s (%v)", tc.code, iss[0].Code, iss)
			}
		})
	}
}

func TestDecode_DuplicateWarnKeepsLastValue(t *testing.T) {
	v, err := nestwalk.Decode(context.Background(), nestwalk.JSONBytes([]byte(`{"a":1,"b":0,"a":2}`)), nestwalk.WalkOpt{Duplicates: nestwalk.Warn})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	m := v.(*nestwalk.OrderedMap)
	got, _ := m.Get("a")
	if got != json.Number("2") || m.Len() != 2 {
		t.Fatalf("expected a=2 with 2 keys, got %v (%d keys)", got, m.Len())
	}
}

func TestIssues_Error(t *testing.T) {
	iss := nestwalk.Issues{
		{Code: "a", Path: "/1"},
		{Code: "b", Path: "/2"},
		{Code: "c", Path: "/3"},
		{Code: "d", Path: "/4"},
	}
	if got := iss.Error(); got != "a at /1; b at /2; c at /3; ... (total 4)" {
		t.Fatalf("unexpected message: %q", got)
	}
	if _, ok := nestwalk.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}

func TestJSONDriver_Switching(t *testing.T) {
	if got := nestwalk.CurrentJSONDriver().Name(); got != "encoding/json" {
		t.Fatalf("unexpected default driver %q", got)
	}
	nestwalk.SetJSONDriver(nil)
	if got := nestwalk.CurrentJSONDriver().Name(); got != "encoding/json" {
		t.Fatalf("nil driver must be ignored, got %q", got)
	}
}
