// Package canvas defines the passive visualization collaborator. The
// reasoning system reports region insertions and removals to a Canvas;
// nothing a Canvas does influences query results.
package canvas

import "github.com/chazu/srs/pkg/region"

// Canvas receives drawing notifications. Implementations may ignore them.
type Canvas interface {
	// Init configures the drawing surface. Scale is surface units per
	// world unit.
	Init(width, height, scale float64) error

	// Draw renders a newly inserted region.
	Draw(r region.Region) error

	// Erase removes a previously drawn region.
	Erase(id int) error
}

// Compile-time interface check.
var _ Canvas = Headless{}

// Headless is a Canvas that discards every notification.
type Headless struct{}

func (Headless) Init(width, height, scale float64) error { return nil }
func (Headless) Draw(r region.Region) error              { return nil }
func (Headless) Erase(id int) error                      { return nil }
