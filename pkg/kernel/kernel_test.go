package kernel

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

func square(x0, y0, side float64) Polygon {
	return Polygon{Vertices: []r2.Point{
		pt(x0, y0), pt(x0+side, y0), pt(x0+side, y0+side), pt(x0, y0+side),
	}}
}

// --- Basic measures ---

func TestDistance(t *testing.T) {
	if got := Distance(pt(0, 0), pt(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(pt(1, 1), pt(1, 1)); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Point
		want    int
	}{
		{"counterclockwise", pt(0, 0), pt(1, 0), pt(0, 1), 1},
		{"clockwise", pt(0, 0), pt(0, 1), pt(1, 0), -1},
		{"collinear", pt(0, 0), pt(1, 1), pt(2, 2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("Orient = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if !Finite(pt(1, 2), pt(-3, 4)) {
		t.Error("Finite = false for ordinary points")
	}
	if Finite(pt(math.NaN(), 0)) {
		t.Error("Finite = true for NaN coordinate")
	}
	if Finite(pt(0, math.Inf(1))) {
		t.Error("Finite = true for infinite coordinate")
	}
}

// --- Circles ---

func TestCircleCircleRelation(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Circle
		want   CircleRelation
	}{
		{"equal", Circle{pt(0, 0), 2}, Circle{pt(0, 0), 2}, CircleEqual},
		{"inside", Circle{pt(1, 1), 1}, Circle{pt(0, 0), 10}, CircleInside},
		{"contains", Circle{pt(0, 0), 10}, Circle{pt(1, 1), 1}, CircleContains},
		{"disjoint", Circle{pt(0, 0), 1}, Circle{pt(100, 0), 1}, CircleDisjoint},
		{"overlap", Circle{pt(0, 0), 2}, Circle{pt(3, 0), 2}, CircleOverlap},
		{"external tangency is disjoint", Circle{pt(0, 0), 1}, Circle{pt(2, 0), 1}, CircleDisjoint},
		{"internal tangency is inside", Circle{pt(1, 0), 1}, Circle{pt(0, 0), 2}, CircleInside},
		{"concentric smaller", Circle{pt(0, 0), 1}, Circle{pt(0, 0), 3}, CircleInside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleCircleRelation(tt.c1, tt.c2); got != tt.want {
				t.Errorf("CircleCircleRelation = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCircleIntersectsPolygonBoundary(t *testing.T) {
	sq := square(0, 0, 4)
	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"crossing an edge", Circle{pt(0, 2), 1}, true},
		{"inside without contact", Circle{pt(2, 2), 1}, false},
		{"far away", Circle{pt(20, 20), 1}, false},
		{"enclosing the polygon", Circle{pt(2, 2), 10}, false},
		{"tangent to an edge", Circle{pt(2, 5), 1}, true},
		{"through a vertex", Circle{pt(5, 5), math.Sqrt2 * 1.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleIntersectsPolygonBoundary(tt.c, sq); got != tt.want {
				t.Errorf("CircleIntersectsPolygonBoundary = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Segments ---

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name string
		s, u Segment
		want bool
	}{
		{"crossing", Segment{pt(0, 0), pt(2, 2)}, Segment{pt(0, 2), pt(2, 0)}, true},
		{"parallel", Segment{pt(0, 0), pt(2, 0)}, Segment{pt(0, 1), pt(2, 1)}, false},
		{"shared endpoint", Segment{pt(0, 0), pt(1, 1)}, Segment{pt(1, 1), pt(2, 0)}, true},
		{"t-junction", Segment{pt(0, 0), pt(2, 0)}, Segment{pt(1, 0), pt(1, 5)}, true},
		{"collinear overlap", Segment{pt(0, 0), pt(3, 0)}, Segment{pt(2, 0), pt(5, 0)}, true},
		{"collinear apart", Segment{pt(0, 0), pt(1, 0)}, Segment{pt(2, 0), pt(3, 0)}, false},
		{"near miss", Segment{pt(0, 0), pt(1, 0)}, Segment{pt(2, -1), pt(2, 1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.s, tt.u); got != tt.want {
				t.Errorf("SegmentsIntersect = %v, want %v", got, tt.want)
			}
			if got := SegmentsIntersect(tt.u, tt.s); got != tt.want {
				t.Errorf("SegmentsIntersect (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	s := Segment{pt(0, 0), pt(10, 0)}
	tests := []struct {
		name string
		p    r2.Point
		want float64
	}{
		{"above middle", pt(5, 3), 3},
		{"before start", pt(-3, 4), 5},
		{"past end", pt(13, 4), 5},
		{"on segment", pt(2, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentDistance(tt.p, s); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SegmentDistance = %v, want %v", got, tt.want)
			}
		})
	}

	degenerate := Segment{pt(1, 1), pt(1, 1)}
	if got := SegmentDistance(pt(4, 5), degenerate); got != 5 {
		t.Errorf("SegmentDistance to point segment = %v, want 5", got)
	}
}

// --- Polygons ---

func TestPointInPolygon(t *testing.T) {
	sq := square(0, 0, 4)
	concave := Polygon{Vertices: []r2.Point{
		pt(0, 0), pt(6, 0), pt(6, 6), pt(3, 2), pt(0, 6),
	}}
	tests := []struct {
		name string
		poly Polygon
		p    r2.Point
		want bool
	}{
		{"center", sq, pt(2, 2), true},
		{"outside", sq, pt(5, 2), false},
		{"on edge", sq, pt(4, 2), true},
		{"on vertex", sq, pt(0, 0), true},
		{"concave notch", concave, pt(3, 5), false},
		{"concave body", concave, pt(1, 1), true},
		{"ray through vertex", concave, pt(-1, 6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, tt.poly); got != tt.want {
				t.Errorf("PointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPolygonsBoundaryIntersect(t *testing.T) {
	a := square(0, 0, 4)
	tests := []struct {
		name string
		b    Polygon
		want bool
	}{
		{"overlapping", square(2, 2, 4), true},
		{"nested", square(1, 1, 1), false},
		{"apart", square(10, 10, 1), false},
		{"sharing an edge", square(4, 0, 4), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonsBoundaryIntersect(a, tt.b); got != tt.want {
				t.Errorf("PolygonsBoundaryIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignedArea(t *testing.T) {
	ccw := square(0, 0, 2)
	if got := SignedArea(ccw); got != 4 {
		t.Errorf("SignedArea(ccw) = %v, want 4", got)
	}
	cw := Polygon{Vertices: []r2.Point{pt(0, 0), pt(0, 2), pt(2, 2), pt(2, 0)}}
	if got := SignedArea(cw); got != -4 {
		t.Errorf("SignedArea(cw) = %v, want -4", got)
	}
}

func TestVertexCentroid(t *testing.T) {
	if got := VertexCentroid(square(0, 0, 2)); got != pt(1, 1) {
		t.Errorf("VertexCentroid = %v, want (1, 1)", got)
	}
}

func TestSelfIntersections(t *testing.T) {
	if hits := SelfIntersections(square(0, 0, 1)); len(hits) != 0 {
		t.Errorf("square self intersections = %v, want none", hits)
	}
	bowtie := Polygon{Vertices: []r2.Point{pt(0, 0), pt(2, 2), pt(2, 0), pt(0, 2)}}
	if hits := SelfIntersections(bowtie); len(hits) == 0 {
		t.Error("bowtie reported no self intersections")
	}
}

// --- Containment ---

func TestContainsAllVertices(t *testing.T) {
	big := square(0, 0, 10)
	tests := []struct {
		name         string
		outer, inner Shape
		want         bool
	}{
		{"square in square", big, square(2, 2, 2), true},
		{"square poking out", big, square(8, 8, 4), false},
		{"circle in square", big, Circle{pt(5, 5), 2}, true},
		{"circle poking out", big, Circle{pt(9, 5), 2}, false},
		{"square in circle", Circle{pt(0, 0), 10}, square(-1, -1, 2), true},
		{"square escaping circle", Circle{pt(0, 0), 1}, square(-1, -1, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAllVertices(tt.outer, tt.inner); got != tt.want {
				t.Errorf("ContainsAllVertices = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundariesIntersectSymmetric(t *testing.T) {
	shapes := []Shape{
		Circle{pt(0, 0), 2},
		Circle{pt(3, 0), 2},
		Circle{pt(50, 50), 1},
		square(-1, -1, 2),
		square(1, 1, 4),
		square(40, 40, 20),
	}
	for i, a := range shapes {
		for j, b := range shapes {
			if BoundariesIntersect(a, b) != BoundariesIntersect(b, a) {
				t.Errorf("BoundariesIntersect(%d, %d) is not symmetric", i, j)
			}
		}
	}
}

func TestCentroidAndArea(t *testing.T) {
	c := Circle{pt(3, 4), 2}
	if got := Centroid(c); got != pt(3, 4) {
		t.Errorf("Centroid(circle) = %v, want (3, 4)", got)
	}
	if got, want := Area(c), 4*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("Area(circle) = %v, want %v", got, want)
	}
	if got := Area(square(0, 0, 3)); got != 9 {
		t.Errorf("Area(square) = %v, want 9", got)
	}
}
