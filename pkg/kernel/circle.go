package kernel

import "math"

// CircleRelation classifies one circle against another.
type CircleRelation int

const (
	CircleDisjoint CircleRelation = iota // interiors and boundaries apart (external tangency included)
	CircleOverlap                        // boundaries cross
	CircleEqual                          // same center and radius
	CircleInside                         // first circle inside the second (internal tangency included)
	CircleContains                       // second circle inside the first
)

func (r CircleRelation) String() string {
	switch r {
	case CircleDisjoint:
		return "disjoint"
	case CircleOverlap:
		return "overlap"
	case CircleEqual:
		return "equal"
	case CircleInside:
		return "inside"
	case CircleContains:
		return "contains"
	default:
		return "unknown"
	}
}

// CircleCircleRelation classifies c1 against c2 using the center distance d
// and radii r1, r2. Comparisons are non-strict, so external tangency is
// reported as disjoint and internal tangency as inside/contains.
func CircleCircleRelation(c1, c2 Circle) CircleRelation {
	d := Distance(c1.Center, c2.Center)
	r1, r2 := c1.Radius, c2.Radius

	switch {
	case d <= Epsilon && math.Abs(r1-r2) <= Epsilon:
		return CircleEqual
	case d+r1 <= r2:
		return CircleInside
	case d+r2 <= r1:
		return CircleContains
	case d >= r1+r2:
		return CircleDisjoint
	default:
		return CircleOverlap
	}
}

// CircleBoundariesTouch reports whether the two circle outlines share a
// point. Tangent circles are treated as not touching, consistent with
// CircleCircleRelation.
func CircleBoundariesTouch(c1, c2 Circle) bool {
	return CircleCircleRelation(c1, c2) == CircleOverlap
}

// CircleIntersectsPolygonBoundary reports whether the circle's outline meets
// any polygon edge. An edge meets the outline when its nearest point is
// within the radius and its farthest point is at or beyond it; an edge
// lying wholly inside the disc does not count.
func CircleIntersectsPolygonBoundary(c Circle, poly Polygon) bool {
	bound := c.Bound()
	for _, e := range poly.Edges() {
		if !bound.Intersects(e.Bound()) {
			continue
		}
		near := SegmentDistance(c.Center, e)
		far := segmentFarDistance(c.Center, e)
		if near <= c.Radius && far >= c.Radius {
			return true
		}
	}
	return false
}
