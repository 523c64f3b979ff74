package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseJSONData(t *testing.T) {
	body := []byte(`{"name": "Al", "age": 30, "active": true, "tags": ["a", "b"]}`)

	data, err := ParseJSONData(body)
	if err != nil {
		t.Fatalf("ParseJSONData: %v", err)
	}
	want := map[string]any{
		"name":   "Al",
		"age":    float64(30),
		"active": true,
		"tags":   []any{"a", "b"},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONData_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{`[1, 2]`, `"text"`, `{"broken":`} {
		if _, err := ParseJSONData([]byte(body)); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}
