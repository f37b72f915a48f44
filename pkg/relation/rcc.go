// Package relation computes qualitative relations between two regions:
// the RCC topological subset {DR, PO, EQ, PP, PPI} and 8-sector compass
// directions, both in the global frame and in a region's own frame.
//
// All functions take a reference region and a primary region and describe
// the primary with respect to the reference.
package relation

import (
	"math"

	"github.com/chazu/srs/pkg/kernel"
	"github.com/chazu/srs/pkg/region"
	"github.com/golang/geo/r2"
)

// RCC is a topological relation. Exactly one holds for any pair.
type RCC int

const (
	DR  RCC = iota // disjoint: no shared interior or boundary points
	PO             // partial overlap: boundaries meet, neither contains the other
	EQ             // identical regions
	PP             // primary is a proper part of the reference
	PPI            // reference is a proper part of the primary
)

func (r RCC) String() string {
	switch r {
	case DR:
		return "DR"
	case PO:
		return "PO"
	case EQ:
		return "EQ"
	case PP:
		return "PP"
	case PPI:
		return "PPI"
	default:
		return "unknown"
	}
}

// Converse returns the relation obtained by swapping reference and primary.
func (r RCC) Converse() RCC {
	switch r {
	case PP:
		return PPI
	case PPI:
		return PP
	default:
		return r
	}
}

// Topology returns the relation of primary with respect to reference.
// The decision order is fixed and the first match wins:
//
//  1. identical geometry            -> EQ
//  2. reference contains primary    -> PP
//  3. primary contains reference    -> PPI
//  4. boundaries touch              -> PO
//  5. otherwise                     -> DR
//
// Containment requires every boundary sample of the inner region to lie
// in the outer region and the two outlines not to meet.
func Topology(reference, primary region.Region) RCC {
	ref, pri := reference.Shape, primary.Shape

	if SameGeometry(ref, pri) {
		return EQ
	}
	if !ref.Bound().Intersects(pri.Bound()) {
		return DR
	}

	if rc, ok := ref.(kernel.Circle); ok {
		if pc, ok := pri.(kernel.Circle); ok {
			return fromCircleRelation(kernel.CircleCircleRelation(pc, rc))
		}
	}

	touch := kernel.BoundariesIntersect(ref, pri)
	switch {
	case !touch && kernel.ContainsAllVertices(ref, pri):
		return PP
	case !touch && kernel.ContainsAllVertices(pri, ref):
		return PPI
	case touch:
		return PO
	default:
		return DR
	}
}

// BoundariesTouch reports whether the outlines of a and b meet, using the
// predicate specific to the variant pair.
func BoundariesTouch(a, b region.Region) bool {
	return kernel.BoundariesIntersect(a.Shape, b.Shape)
}

// fromCircleRelation maps the classification of the primary circle against
// the reference circle.
func fromCircleRelation(r kernel.CircleRelation) RCC {
	switch r {
	case kernel.CircleEqual:
		return EQ
	case kernel.CircleInside:
		return PP
	case kernel.CircleContains:
		return PPI
	case kernel.CircleOverlap:
		return PO
	default:
		return DR
	}
}

// SameGeometry reports whether a and b are the same variant with the same
// defining parameters within kernel.Epsilon. Polygon vertex rings match
// under any cyclic shift and under reversal.
func SameGeometry(a, b kernel.Shape) bool {
	switch a := a.(type) {
	case kernel.Circle:
		b, ok := b.(kernel.Circle)
		return ok && kernel.ApproxEqual(a.Center, b.Center) && math.Abs(a.Radius-b.Radius) <= kernel.Epsilon
	case kernel.Polygon:
		b, ok := b.(kernel.Polygon)
		return ok && sameRing(a.Vertices, b.Vertices)
	}
	return false
}

func sameRing(a, b []r2.Point) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	for shift := 0; shift < n; shift++ {
		if !kernel.ApproxEqual(a[0], b[shift]) {
			continue
		}
		forward, backward := true, true
		for k := 0; k < n && (forward || backward); k++ {
			if forward && !kernel.ApproxEqual(a[k], b[(shift+k)%n]) {
				forward = false
			}
			if backward && !kernel.ApproxEqual(a[k], b[(shift-k+n)%n]) {
				backward = false
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}
