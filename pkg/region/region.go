package region

import (
	"fmt"
	"math"

	"github.com/chazu/srs/pkg/kernel"
	"github.com/golang/geo/r2"
)

// Kind distinguishes the shape variants.
type Kind int

const (
	KindCircle  Kind = iota // disc with center and radius
	KindPolygon             // simple closed polygon
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Region is a stored shape. ID is chosen by the caller and unique within a
// store; Name is a display label only; Orientation is the region's intrinsic
// facing, used only by allocentric direction queries.
type Region struct {
	ID          int
	Name        string
	Orientation r2.Point
	Shape       kernel.Shape
}

// NewCircle builds a circular region, rejecting non-positive radii and
// non-finite coordinates.
func NewCircle(id int, name string, center r2.Point, radius float64, orientation r2.Point) (Region, error) {
	if !kernel.Finite(center, orientation) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Region{}, &DegenerateInputError{ID: id, Reason: "non-finite coordinate"}
	}
	if radius <= 0 {
		return Region{}, &DegenerateInputError{ID: id, Reason: fmt.Sprintf("radius %g must be positive", radius)}
	}
	return Region{
		ID:          id,
		Name:        name,
		Orientation: orientation,
		Shape:       kernel.Circle{Center: center, Radius: radius},
	}, nil
}

// NewPolygon builds a polygonal region from at least three vertices. The
// vertex slice is copied so the caller may reuse it.
func NewPolygon(id int, name string, vertices []r2.Point, orientation r2.Point) (Region, error) {
	if len(vertices) < 3 {
		return Region{}, &DegenerateInputError{ID: id, Reason: fmt.Sprintf("polygon has %d vertices, need at least 3", len(vertices))}
	}
	if !kernel.Finite(vertices...) || !kernel.Finite(orientation) {
		return Region{}, &DegenerateInputError{ID: id, Reason: "non-finite coordinate"}
	}
	vs := make([]r2.Point, len(vertices))
	copy(vs, vertices)
	return Region{
		ID:          id,
		Name:        name,
		Orientation: orientation,
		Shape:       kernel.Polygon{Vertices: vs},
	}, nil
}

// Kind reports the shape variant.
func (r Region) Kind() Kind {
	switch r.Shape.(type) {
	case kernel.Circle:
		return KindCircle
	case kernel.Polygon:
		return KindPolygon
	default:
		panic(fmt.Sprintf("region: unhandled shape %T", r.Shape))
	}
}

// Label returns "name(id)", or just the id when the region is unnamed.
func (r Region) Label() string {
	if r.Name == "" {
		return fmt.Sprintf("%d", r.ID)
	}
	return fmt.Sprintf("%s(%d)", r.Name, r.ID)
}

// Centroid is the circle center or the polygon vertex mean.
func (r Region) Centroid() r2.Point {
	return kernel.Centroid(r.Shape)
}

// ContainsPoint reports whether p is in the closed region.
func (r Region) ContainsPoint(p r2.Point) bool {
	return kernel.ContainsPoint(r.Shape, p)
}

// BoundaryIntersects reports whether the outlines of r and other meet.
func (r Region) BoundaryIntersects(other Region) bool {
	return kernel.BoundariesIntersect(r.Shape, other.Shape)
}

// Area is πr² for circles and the signed shoelace area for polygons.
func (r Region) Area() float64 {
	return kernel.Area(r.Shape)
}

// Bound is the axis-aligned bounding box.
func (r Region) Bound() r2.Rect {
	return r.Shape.Bound()
}

// Heading returns the angle of the orientation vector in radians,
// counterclockwise from +x. A zero vector faces +x.
func (r Region) Heading() float64 {
	if r.Orientation.X == 0 && r.Orientation.Y == 0 {
		return 0
	}
	return math.Atan2(r.Orientation.Y, r.Orientation.X)
}

func (r Region) String() string {
	return fmt.Sprintf("%s %s at %v", r.Kind(), r.Label(), r.Centroid())
}
