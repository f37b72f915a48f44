// Package kernel provides the exact 2D geometry predicates used by the
// relation engine. Every function is pure and total over well-formed input:
// callers guarantee positive radii and polygons with at least three
// vertices, so nothing here returns an error.
//
// Points are github.com/golang/geo/r2 points; bounding boxes are r2.Rect.
package kernel

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance used for equality of defining parameters
// (centers, radii, vertices). Containment and intersection predicates are
// evaluated without tolerance.
const Epsilon = 1e-9

// Distance returns the Euclidean distance between p and q.
func Distance(p, q r2.Point) float64 {
	return p.Sub(q).Norm()
}

// ApproxEqual reports whether p and q are within Epsilon of each other.
func ApproxEqual(p, q r2.Point) bool {
	return Distance(p, q) <= Epsilon
}

// Orient returns +1 if a, b, c turn counterclockwise, -1 if clockwise and
// 0 if the three points are collinear.
func Orient(a, b, c r2.Point) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// finite reports whether both coordinates of p are finite numbers.
func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Finite reports whether every point is finite.
func Finite(pts ...r2.Point) bool {
	for _, p := range pts {
		if !finite(p) {
			return false
		}
	}
	return true
}
