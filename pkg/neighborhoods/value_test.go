package neighborhoods

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustDecode(t *testing.T, body string) any {
	t.Helper()
	v, err := decodeJSON([]byte(body))
	if err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	return v
}

func TestConvertRecordExposesFields(t *testing.T) {
	v := Convert(mustDecode(t, `{"id": 42, "name": "SoHo"}`))

	if v.Kind() != Record {
		t.Fatalf("expected record, got %s", v.Kind())
	}
	id, ok := v.ID().Int()
	if !ok || id != 42 {
		t.Fatalf("expected id 42, got %d (ok=%v)", id, ok)
	}
	name, ok := v.Get("name").Text()
	if !ok || name != "SoHo" {
		t.Fatalf("expected name SoHo, got %q (ok=%v)", name, ok)
	}
	if diff := cmp.Diff([]string{"id", "name"}, v.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertCoversEveryJSONType(t *testing.T) {
	v := Convert(mustDecode(t, `{
		"s": "text",
		"n": 1.25,
		"t": true,
		"z": null,
		"a": [1, "two", {"id": "three"}],
		"o": {"nested": {"id": 9}}
	}`))

	tests := []struct {
		key  string
		kind Kind
	}{
		{"s", String},
		{"n", Number},
		{"t", Bool},
		{"z", Null},
		{"a", List},
		{"o", Record},
		{"missing", Invalid},
	}
	for _, tt := range tests {
		if got := v.Get(tt.key).Kind(); got != tt.kind {
			t.Fatalf("field %s: expected %s, got %s", tt.key, tt.kind, got)
		}
	}

	if f, ok := v.Get("n").Float(); !ok || f != 1.25 {
		t.Fatalf("expected 1.25, got %v (ok=%v)", f, ok)
	}
	if b, ok := v.Get("t").Bool(); !ok || !b {
		t.Fatalf("expected true, got %v (ok=%v)", b, ok)
	}
	list := v.Get("a")
	if list.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", list.Len())
	}
	if id, _ := list.Index(2).ID().Text(); id != "three" {
		t.Fatalf("expected nested id three, got %q", id)
	}
	if id, _ := v.Get("o").Get("nested").ID().Int(); id != 9 {
		t.Fatalf("expected nested id 9, got %d", id)
	}
	if got := list.Index(5); got.Kind() != Invalid {
		t.Fatalf("expected invalid for out of range index, got %s", got.Kind())
	}
}

func TestConvertScalarsPassThrough(t *testing.T) {
	for _, in := range []any{"x", true, json.Number("3"), nil} {
		got := Convert(in).Interface()
		if diff := cmp.Diff(in, got); diff != "" {
			t.Fatalf("scalar %v changed (-want +got):\n%s", in, diff)
		}
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	decoded := mustDecode(t, `[{"id": 1, "tags": ["a", "b"], "meta": {"area": 0.5, "x": null}}]`)

	once := Convert(decoded)
	twice := Convert(once)
	again := Convert(once.Interface())

	if diff := cmp.Diff(once.Interface(), twice.Interface()); diff != "" {
		t.Fatalf("converting a Value changed it (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(decoded, again.Interface()); diff != "" {
		t.Fatalf("round trip through Interface changed data (-want +got):\n%s", diff)
	}
}

func TestIDPrefersDataOverAccessors(t *testing.T) {
	v := Convert(map[string]any{"id": "abc", "kind": "neighborhood"})
	if id, ok := v.ID().Text(); !ok || id != "abc" {
		t.Fatalf("expected id abc, got %q", id)
	}
	if k, _ := v.Get("kind").Text(); k != "neighborhood" {
		t.Fatalf("expected a field named kind to be reachable, got %q", k)
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"id": 12345678901234567, "name": "Nolita"}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if id, ok := v.ID().Int(); !ok || id != 12345678901234567 {
		t.Fatalf("expected exact id, got %d", id)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"id":12345678901234567,"name":"Nolita"}` {
		t.Fatalf("unexpected json %s", out)
	}
}

func TestZeroValueIsSafe(t *testing.T) {
	var v Value
	if v.Kind() != Invalid || v.Len() != 0 || v.Has("id") || v.Keys() != nil {
		t.Fatalf("zero value should be empty")
	}
	if _, ok := v.Get("id").Int(); ok {
		t.Fatalf("zero value should not yield a number")
	}
	if v.String() != "<invalid>" {
		t.Fatalf("unexpected String() %q", v.String())
	}
}
