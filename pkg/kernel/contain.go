package kernel

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// ContainsPoint reports whether p lies inside or on the boundary of s.
func ContainsPoint(s Shape, p r2.Point) bool {
	switch s := s.(type) {
	case Circle:
		return Distance(s.Center, p) <= s.Radius
	case Polygon:
		return PointInPolygon(p, s)
	default:
		panic(fmt.Sprintf("kernel: unhandled shape %T", s))
	}
}

// BoundaryPoints returns the sample points used for containment tests:
// the vertices of a polygon, or the four axis-aligned extreme points plus
// the center of a circle.
func BoundaryPoints(s Shape) []r2.Point {
	switch s := s.(type) {
	case Circle:
		c, r := s.Center, s.Radius
		return []r2.Point{
			{X: c.X + r, Y: c.Y},
			{X: c.X, Y: c.Y + r},
			{X: c.X - r, Y: c.Y},
			{X: c.X, Y: c.Y - r},
			c,
		}
	case Polygon:
		return s.Vertices
	default:
		panic(fmt.Sprintf("kernel: unhandled shape %T", s))
	}
}

// ContainsAllVertices reports whether every boundary sample of inner lies
// inside or on outer. Combined with the absence of boundary contact this
// decides containment exactly.
func ContainsAllVertices(outer, inner Shape) bool {
	if !outer.Bound().Contains(inner.Bound()) {
		return false
	}
	for _, p := range BoundaryPoints(inner) {
		if !ContainsPoint(outer, p) {
			return false
		}
	}
	return true
}

// BoundariesIntersect dispatches to the boundary contact test for the pair
// of variants.
func BoundariesIntersect(a, b Shape) bool {
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return CircleBoundariesTouch(a, b)
		case Polygon:
			return CircleIntersectsPolygonBoundary(a, b)
		}
	case Polygon:
		switch b := b.(type) {
		case Circle:
			return CircleIntersectsPolygonBoundary(b, a)
		case Polygon:
			return PolygonsBoundaryIntersect(a, b)
		}
	}
	panic(fmt.Sprintf("kernel: unhandled shape pair %T, %T", a, b))
}

// Centroid returns the center of a circle or the vertex mean of a polygon.
func Centroid(s Shape) r2.Point {
	switch s := s.(type) {
	case Circle:
		return s.Center
	case Polygon:
		return VertexCentroid(s)
	default:
		panic(fmt.Sprintf("kernel: unhandled shape %T", s))
	}
}

// Area returns πr² for circles and the signed shoelace area for polygons.
func Area(s Shape) float64 {
	switch s := s.(type) {
	case Circle:
		return s.Area()
	case Polygon:
		return SignedArea(s)
	default:
		panic(fmt.Sprintf("kernel: unhandled shape %T", s))
	}
}
