package forms

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/widgets"
)

func TestResolveConfig_Defaults(t *testing.T) {
	effective := ResolveConfig(Config{})

	if got := effective.Prefix(); got != "" {
		t.Fatalf("default prefix = %q, want empty", got)
	}
	if effective.Renderer() == nil {
		t.Fatal("default renderer must not be nil")
	}
	if got := effective.Widget("anything"); got != "" {
		t.Fatalf("unexpected widget override %q", got)
	}
	if got := effective.FieldAttrs("anything"); got != nil {
		t.Fatalf("unexpected field attrs %v", got)
	}
}

func TestResolveConfig_BasePrefixInherited(t *testing.T) {
	base := Config{Prefix: "a_"}

	derived := ResolveConfig(Config{}, base)
	if got := derived.Prefix(); got != "a_" {
		t.Fatalf("inherited prefix = %q, want %q", got, "a_")
	}

	overridden := ResolveConfig(Config{Prefix: "b_"}, base)
	if got := overridden.Prefix(); got != "b_" {
		t.Fatalf("overridden prefix = %q, want %q", got, "b_")
	}
}

func TestResolveConfig_PerKeyMerge(t *testing.T) {
	grandparent := Config{
		Prefix:  "gp_",
		Widgets: map[string]widgets.Type{"age": widgets.TypeNumber, "active": widgets.TypeCheckbox},
		Attrs:   map[string]map[string]any{"name": {"placeholder": "old", "autocomplete": "name"}},
	}
	parent := Config{
		Widgets: map[string]widgets.Type{"age": widgets.TypeText},
	}
	own := Config{
		Attrs: map[string]map[string]any{"name": {"placeholder": "new"}},
	}

	effective := ResolveConfig(own, grandparent, parent)

	if got := effective.Prefix(); got != "gp_" {
		t.Fatalf("prefix = %q, want %q", got, "gp_")
	}
	if got := effective.Widget("age"); got != widgets.TypeText {
		t.Fatalf("age widget = %q, most-derived declaration must win", got)
	}
	if got := effective.Widget("active"); got != widgets.TypeCheckbox {
		t.Fatalf("active widget = %q, untouched keys must survive", got)
	}
	wantAttrs := map[string]any{"placeholder": "new", "autocomplete": "name"}
	if diff := cmp.Diff(wantAttrs, effective.FieldAttrs("name")); diff != "" {
		t.Fatalf("attrs merge mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConfig_PureAndRepeatable(t *testing.T) {
	base := Config{Prefix: "a_", Widgets: map[string]widgets.Type{"x": widgets.TypeNumber}}
	own := Config{Attrs: map[string]map[string]any{"x": {"step": "2"}}}

	first := ResolveConfig(own, base)
	second := ResolveConfig(own, base)

	if first.Prefix() != second.Prefix() || first.Widget("x") != second.Widget("x") {
		t.Fatal("equal inputs must produce equivalent configs")
	}

	// Mutating a returned attrs copy must not bleed into the config.
	attrs := first.FieldAttrs("x")
	attrs["step"] = "changed"
	if got := first.FieldAttrs("x")["step"]; got != "2" {
		t.Fatalf("config leaked mutable state: step = %v", got)
	}
}

func TestLoadConfig(t *testing.T) {
	doc := `
prefix: "f_"
mask_secrets: true
widgets:
  age: checkbox
attrs:
  name:
    placeholder: Full name
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Prefix != "f_" {
		t.Fatalf("prefix = %q", cfg.Prefix)
	}
	if !cfg.MaskSecrets {
		t.Fatal("mask_secrets not decoded")
	}
	if got := cfg.Widgets["age"]; got != widgets.TypeCheckbox {
		t.Fatalf("widget override = %q", got)
	}
	if got := cfg.Attrs["name"]["placeholder"]; got != "Full name" {
		t.Fatalf("placeholder = %v", got)
	}
}

func TestLoadConfig_RejectsUnknownWidget(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("widgets: {age: dial}"))
	if err == nil {
		t.Fatal("expected an error for an undeclared widget kind")
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("renderer: vanilla"))
	if err == nil {
		t.Fatal("expected strict decoding to reject unknown keys")
	}
}
