// Package render defines the renderer boundary and ships the reference
// string renderer. Renderers are pluggable per form configuration; the
// binding core never assumes a particular output format beyond calling the
// configured renderer.
package render

import (
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Renderer turns one widget instance into output text. Implementations must
// treat the instance as read-only.
type Renderer interface {
	Render(widget *widgets.Instance) (string, error)
}
