package relation

import (
	"math"

	"github.com/chazu/srs/pkg/kernel"
	"github.com/chazu/srs/pkg/region"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Sector is one of eight 45° compass sectors. The integer values are the
// external codes returned by orientation queries.
type Sector int

const (
	N Sector = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// SectorUndefined is returned when the two centroids coincide and the
// direction between them has no meaning.
const SectorUndefined Sector = -1

func (s Sector) String() string {
	switch s {
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	case SectorUndefined:
		return "UNDEFINED"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the eight compass sectors.
func (s Sector) Valid() bool {
	return s >= N && s <= NW
}

// compass lists sectors counterclockwise starting at east, so index k is
// centered on k*45°.
var compass = [8]Sector{E, NE, N, NW, W, SW, S, SE}

// boundaryTolerance is how close, in degrees, an angle must be to an odd
// multiple of 22.5° to count as lying on a sector boundary.
const boundaryTolerance = 1e-9

// Bearing returns the angle of v counterclockwise from +x.
func Bearing(v r2.Point) s1.Angle {
	return s1.Angle(math.Atan2(v.Y, v.X)) * s1.Radian
}

// Quantize maps an angle onto the eight compass sectors. Sector boundaries
// sit at odd multiples of 22.5°; an angle on a boundary resolves to the
// neighbouring sector with the lower code.
func Quantize(a s1.Angle) Sector {
	deg := math.Mod(a.Degrees(), 360)
	if deg < 0 {
		deg += 360
	}
	shifted := deg + 22.5

	if rem := math.Mod(shifted, 45); rem <= boundaryTolerance || 45-rem <= boundaryTolerance {
		b := int(math.Round(shifted/45)) % 8
		lo, hi := compass[(b+7)%8], compass[b]
		if hi < lo {
			return hi
		}
		return lo
	}
	return compass[int(math.Floor(shifted/45))%8]
}

// Direction returns the global-frame sector of primary's centroid as seen
// from reference's centroid.
func Direction(reference, primary region.Region) Sector {
	v, ok := offset(reference, primary)
	if !ok {
		return SectorUndefined
	}
	return Quantize(Bearing(v))
}

// AllocentricDirection returns the sector of primary relative to
// reference's intrinsic facing: the centroid offset is rotated by the
// negative of the reference heading before quantization, so a region
// facing north sees an eastern neighbour to its south.
func AllocentricDirection(reference, primary region.Region) Sector {
	v, ok := offset(reference, primary)
	if !ok {
		return SectorUndefined
	}
	heading := s1.Angle(reference.Heading()) * s1.Radian
	return Quantize(Bearing(v) - heading)
}

// offset returns the vector between the centroids, or false when they
// coincide.
func offset(reference, primary region.Region) (r2.Point, bool) {
	v := primary.Centroid().Sub(reference.Centroid())
	if v.Norm() <= kernel.Epsilon {
		return r2.Point{}, false
	}
	return v, true
}
