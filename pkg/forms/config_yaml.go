package forms

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/widgets"
)

type configDocument struct {
	Prefix      string                    `yaml:"prefix"`
	MaskSecrets bool                      `yaml:"mask_secrets"`
	Widgets     map[string]string         `yaml:"widgets"`
	Attrs       map[string]map[string]any `yaml:"attrs"`
}

// LoadConfig decodes a declarative form configuration document. Unknown keys
// are rejected; widget overrides must name declared widget kinds. Renderers
// cannot be expressed declaratively and stay at their default until set in
// code.
func LoadConfig(r io.Reader) (Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc configDocument
	if err := decoder.Decode(&doc); err != nil {
		return Config{}, fmt.Errorf("forms: decode config: %w", err)
	}

	cfg := Config{
		Prefix:      doc.Prefix,
		MaskSecrets: doc.MaskSecrets,
		Attrs:       doc.Attrs,
	}
	if len(doc.Widgets) > 0 {
		cfg.Widgets = make(map[string]widgets.Type, len(doc.Widgets))
		for field, name := range doc.Widgets {
			widget := widgets.Type(name)
			if !widget.Valid() {
				return Config{}, fmt.Errorf("forms: config: unknown widget %q for field %q", name, field)
			}
			cfg.Widgets[field] = widget
		}
	}
	return cfg, nil
}
