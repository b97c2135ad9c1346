// Package geom holds drawing configuration for the DCEL geometry layer.
package geom

import "github.com/jgrey4296/dejavu/internal/registry"

// Colour is an RGBA quadruple with components in [0, 1].
type Colour [4]float64

// Framework default colours.
var (
	FaceColour       = Colour{0.2, 0.2, 0.9, 1}
	EdgeColour       = Colour{0.4, 0.8, 0.1, 1}
	VertColour       = Colour{0.9, 0.1, 0.1, 1}
	BackgroundColour = Colour{0, 0, 0, 1}
)

// DrawSettings toggles which DCEL components are drawn and with what
// colours.
type DrawSettings struct {
	Text     bool
	Faces    bool
	Edges    bool
	Vertices bool

	FaceColour Colour
	EdgeColour Colour
	VertColour Colour
	Background Colour

	EdgeWidth float64
}

// DefaultDrawSettings returns the framework defaults: faces only, standard
// palette.
func DefaultDrawSettings() DrawSettings {
	return DrawSettings{
		Faces:      true,
		FaceColour: FaceColour,
		EdgeColour: EdgeColour,
		VertColour: VertColour,
		Background: BackgroundColour,
		EdgeWidth:  0.15,
	}
}

// Module registers the package namespace so draw settings are resolvable
// by code reference.
type Module struct{}

// Register implements registry.Module.
func (Module) Register(r *registry.Registry) {
	ns := r.Namespace("dejavu.geom")
	ns.Register("DrawSettings", DrawSettings{})
	ns.Register("DefaultDrawSettings", DefaultDrawSettings)
}
