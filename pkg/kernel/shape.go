package kernel

import (
	"math"

	"github.com/golang/geo/r2"
)

// Shape is the closed set of region geometries the kernel understands.
// The unexported marker method restricts implementations to this package,
// so a type switch over Circle and Polygon is exhaustive.
type Shape interface {
	// Bound returns the axis-aligned bounding box.
	Bound() r2.Rect

	shape()
}

// Circle is a disc with a strictly positive radius.
type Circle struct {
	Center r2.Point
	Radius float64
}

func (Circle) shape() {}

// Bound returns the square enclosing the circle.
func (c Circle) Bound() r2.Rect {
	return r2.RectFromCenterSize(c.Center, r2.Point{X: 2 * c.Radius, Y: 2 * c.Radius})
}

// Area returns πr².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Polygon is a simple closed polygon. Vertex k connects to vertex k+1 mod n.
type Polygon struct {
	Vertices []r2.Point
}

func (Polygon) shape() {}

// Bound returns the bounding box of the vertices.
func (p Polygon) Bound() r2.Rect {
	return r2.RectFromPoints(p.Vertices...)
}

// Edges returns the closed edge ring of the polygon.
func (p Polygon) Edges() []Segment {
	n := len(p.Vertices)
	edges := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Segment{A: p.Vertices[i], B: p.Vertices[(i+1)%n]})
	}
	return edges
}

// Segment is a closed line segment from A to B.
type Segment struct {
	A, B r2.Point
}

// Bound returns the bounding box of the segment.
func (s Segment) Bound() r2.Rect {
	return r2.RectFromPoints(s.A, s.B)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}
