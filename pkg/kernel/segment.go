package kernel

import (
	"math"

	"github.com/golang/geo/r2"
)

// SegmentsIntersect reports whether s and t cross or touch, including
// collinear overlap and shared endpoints.
func SegmentsIntersect(s, t Segment) bool {
	if !s.Bound().Intersects(t.Bound()) {
		return false
	}

	d1 := Orient(t.A, t.B, s.A)
	d2 := Orient(t.A, t.B, s.B)
	d3 := Orient(s.A, s.B, t.A)
	d4 := Orient(s.A, s.B, t.B)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	// Collinear or endpoint cases: a zero orientation means the point lies
	// on the other segment's supporting line.
	switch {
	case d1 == 0 && onSegment(t, s.A):
		return true
	case d2 == 0 && onSegment(t, s.B):
		return true
	case d3 == 0 && onSegment(s, t.A):
		return true
	case d4 == 0 && onSegment(s, t.B):
		return true
	}
	return false
}

// onSegment reports whether p, already known to be collinear with s,
// lies within the segment's extent.
func onSegment(s Segment, p r2.Point) bool {
	return s.Bound().ContainsPoint(p)
}

// SegmentDistance returns the distance from p to the closest point of s.
func SegmentDistance(p r2.Point, s Segment) float64 {
	ab := s.B.Sub(s.A)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return Distance(p, s.A)
	}
	t := p.Sub(s.A).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return Distance(p, s.A)
	case t >= 1:
		return Distance(p, s.B)
	}
	return Distance(p, s.A.Add(ab.Mul(t)))
}

// segmentFarDistance returns the distance from p to the farthest point of
// s, which is always one of the endpoints.
func segmentFarDistance(p r2.Point, s Segment) float64 {
	return math.Max(Distance(p, s.A), Distance(p, s.B))
}
