package kernel

import "github.com/golang/geo/r2"

// PointInPolygon reports whether p lies inside or on the boundary of poly,
// using a crossing-number test after an explicit boundary check.
func PointInPolygon(p r2.Point, poly Polygon) bool {
	if !poly.Bound().ContainsPoint(p) {
		return false
	}

	inside := false
	n := len(poly.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly.Vertices[j], poly.Vertices[i]
		edge := Segment{A: a, B: b}
		if Orient(a, b, p) == 0 && onSegment(edge, p) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// PolygonsBoundaryIntersect reports whether any edge of p1 crosses or
// touches any edge of p2.
func PolygonsBoundaryIntersect(p1, p2 Polygon) bool {
	if !p1.Bound().Intersects(p2.Bound()) {
		return false
	}
	e2 := p2.Edges()
	for _, a := range p1.Edges() {
		for _, b := range e2 {
			if SegmentsIntersect(a, b) {
				return true
			}
		}
	}
	return false
}

// SignedArea returns the shoelace area of poly: positive for
// counterclockwise vertex order, negative for clockwise.
func SignedArea(poly Polygon) float64 {
	var sum float64
	n := len(poly.Vertices)
	for i := 0; i < n; i++ {
		a, b := poly.Vertices[i], poly.Vertices[(i+1)%n]
		sum += a.Cross(b)
	}
	return sum / 2
}

// VertexCentroid returns the arithmetic mean of the vertices.
func VertexCentroid(poly Polygon) r2.Point {
	var c r2.Point
	for _, v := range poly.Vertices {
		c = c.Add(v)
	}
	if len(poly.Vertices) == 0 {
		return c
	}
	return c.Mul(1 / float64(len(poly.Vertices)))
}

// SelfIntersections returns the index pairs of non-adjacent edges that
// cross or touch. A simple polygon has none.
func SelfIntersections(poly Polygon) [][2]int {
	edges := poly.Edges()
	n := len(edges)
	var hits [][2]int
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last edge share vertex 0
			}
			if SegmentsIntersect(edges[i], edges[j]) {
				hits = append(hits, [2]int{i, j})
			}
		}
	}
	return hits
}
