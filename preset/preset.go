// Package preset defines the filter data model: each preset is a name bound
// to an ordered list of operations, and the registry is the static table of
// every recipe the engine knows. Adding a preset is a table edit; no other
// component changes.
package preset

import (
	"github.com/filtergram/filtergram/blend"
	"github.com/filtergram/filtergram/overlay"
)

// Operation is one step of a preset: either a color adjustment or an
// overlay composite. The sequence order is authoritative; the executor must
// never reorder.
type Operation interface {
	isOperation()
}

// AdjustKind names a color adjustment.
type AdjustKind int

const (
	Brightness AdjustKind = iota
	Saturate
	HueRotate
	Contrast
	Sepia
	Grayscale
)

var adjustNames = map[AdjustKind]string{
	Brightness: "brightness",
	Saturate:   "saturate",
	HueRotate:  "hue-rotate",
	Contrast:   "contrast",
	Sepia:      "sepia",
	Grayscale:  "grayscale",
}

func (k AdjustKind) String() string {
	if name, ok := adjustNames[k]; ok {
		return name
	}
	return "unknown"
}

// Adjust applies a color adjustment at the given amount. Amounts use CSS
// units: multipliers for brightness/saturate/contrast, intensities in [0,1]
// for sepia/grayscale, degrees for hue-rotate.
type Adjust struct {
	Kind   AdjustKind
	Amount float64
}

func (Adjust) isOperation() {}

// Overlay composites a built overlay onto the working image.
type Overlay struct {
	Fill    overlay.Fill
	Opacity float64 // percent in [0, 100]
	Mode    blend.Mode
}

func (Overlay) isOperation() {}

// Spec is an immutable preset definition.
type Spec struct {
	Name string
	Ops  []Operation
}

// Registry is the read-only table of preset definitions, keyed by name and
// preserving declaration order.
type Registry struct {
	names []string
	specs map[string]*Spec
}

func newRegistry(specs []*Spec) *Registry {
	r := &Registry{specs: make(map[string]*Spec, len(specs))}
	for _, s := range specs {
		r.names = append(r.names, s.Name)
		r.specs[s.Name] = s
	}
	return r
}

// Lookup returns the preset with the given name.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Names returns the preset names in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of presets.
func (r *Registry) Len() int {
	return len(r.names)
}
