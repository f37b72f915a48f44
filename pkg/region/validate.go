package region

import (
	"fmt"
	"math"

	"github.com/chazu/srs/pkg/kernel"
)

// Warning is an advisory finding about a region. Warnings never prevent
// insertion; the relation engine assumes simple polygons and gives
// best-effort answers when that assumption is violated.
type Warning struct {
	ID      int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("shape %d: %s", w.ID, w.Message)
}

// Validate runs the best-effort checks on r and returns any warnings.
// It is read-only.
func Validate(r Region) []Warning {
	var warnings []Warning
	warnings = append(warnings, validateOrientation(r)...)
	if poly, ok := r.Shape.(kernel.Polygon); ok {
		warnings = append(warnings, validateSimple(r.ID, poly)...)
		warnings = append(warnings, validateArea(r.ID, poly)...)
		warnings = append(warnings, validateRepeatedVertices(r.ID, poly)...)
	}
	return warnings
}

// validateOrientation flags a zero facing vector, which makes allocentric
// queries fall back to the global frame.
func validateOrientation(r Region) []Warning {
	if r.Orientation.X == 0 && r.Orientation.Y == 0 {
		return []Warning{{ID: r.ID, Message: "orientation vector is zero; allocentric queries use the global frame"}}
	}
	return nil
}

// validateSimple flags crossing non-adjacent edges.
func validateSimple(id int, poly kernel.Polygon) []Warning {
	var warnings []Warning
	for _, pair := range kernel.SelfIntersections(poly) {
		warnings = append(warnings, Warning{
			ID:      id,
			Message: fmt.Sprintf("edges %d and %d intersect; polygon is not simple", pair[0], pair[1]),
		})
	}
	return warnings
}

// validateArea flags polygons whose vertices are all collinear.
func validateArea(id int, poly kernel.Polygon) []Warning {
	if math.Abs(kernel.SignedArea(poly)) <= kernel.Epsilon {
		return []Warning{{ID: id, Message: "polygon has zero area"}}
	}
	return nil
}

// validateRepeatedVertices flags consecutive duplicate vertices.
func validateRepeatedVertices(id int, poly kernel.Polygon) []Warning {
	var warnings []Warning
	n := len(poly.Vertices)
	for i := 0; i < n; i++ {
		if kernel.ApproxEqual(poly.Vertices[i], poly.Vertices[(i+1)%n]) {
			warnings = append(warnings, Warning{
				ID:      id,
				Message: fmt.Sprintf("vertices %d and %d coincide", i, (i+1)%n),
			})
		}
	}
	return warnings
}
