package srs

import (
	"fmt"
	"io"

	"github.com/chazu/srs/pkg/region"
	"github.com/chazu/srs/pkg/relation"
)

// Orientation is one line of the diagnostic sweep.
type Orientation struct {
	Reference region.Region
	Primary   region.Region
	Sector    relation.Sector
}

func (o Orientation) String() string {
	return fmt.Sprintf("%s is %s of %s", o.Primary.Label(), o.Sector, o.Reference.Label())
}

// Orientations computes the global direction for every ordered pair of
// distinct regions, references in ascending id order and primaries in
// ascending id order within each reference.
func (s *System) Orientations() []Orientation {
	regions := s.Regions()
	out := make([]Orientation, 0, len(regions)*(len(regions)-1))
	for _, ref := range regions {
		for _, pri := range regions {
			if ref.ID == pri.ID {
				continue
			}
			out = append(out, Orientation{
				Reference: ref,
				Primary:   pri,
				Sector:    relation.Direction(ref, pri),
			})
		}
	}
	return out
}

// PrintAllRelativeOrientations writes the sweep to w, one pair per line.
func (s *System) PrintAllRelativeOrientations(w io.Writer) error {
	for _, o := range s.Orientations() {
		if _, err := fmt.Fprintln(w, o.String()); err != nil {
			return err
		}
	}
	return nil
}
