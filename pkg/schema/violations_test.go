package schema

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestViolations_ByFieldPreservesOrderAndMerges(t *testing.T) {
	violations := Violations{
		{Field: "age", Kind: "minimum", Message: "too small"},
		{Field: "name", Kind: "required"},
		{Field: "age", Kind: "type", Message: "not a number"},
	}

	got := violations.ByField()
	want := map[string][]Violation{
		"age": {
			{Field: "age", Kind: "minimum", Message: "too small"},
			{Field: "age", Kind: "type", Message: "not a number"},
		},
		"name": {
			{Field: "name", Kind: "required"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("grouped violations mismatch (-want +got):\n%s", diff)
	}
}

func TestViolations_ByFieldEmpty(t *testing.T) {
	if got := (Violations{}).ByField(); got != nil {
		t.Fatalf("expected nil grouping for empty set, got %v", got)
	}
}

func TestViolations_ErrorListsEveryField(t *testing.T) {
	violations := Violations{
		{Field: "age", Kind: "maximum", Message: "out of range"},
		{Field: "name", Kind: "required"},
	}
	want := "validation failed: age: out of range; name: required"
	if got := violations.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestSecret_MaskedEverywhereButReveal(t *testing.T) {
	secret := Secret("hunter2")

	if got := secret.Reveal(); got != "hunter2" {
		t.Fatalf("Reveal() = %q", got)
	}
	if got := secret.String(); got == "hunter2" {
		t.Fatal("String() leaked the secret")
	}
	if got := fmt.Sprintf("%v", secret); got == "hunter2" {
		t.Fatalf("fmt %%v leaked the secret")
	}
	if got := fmt.Sprintf("%#v", secret); got == "hunter2" {
		t.Fatalf("fmt %%#v leaked the secret")
	}
	text, err := secret.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) == "hunter2" {
		t.Fatal("MarshalText leaked the secret")
	}
}

func TestSecret_EmptyStaysEmpty(t *testing.T) {
	if got := Secret("").String(); got != "" {
		t.Fatalf("empty secret should render empty, got %q", got)
	}
}
