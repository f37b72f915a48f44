// Package store holds regions by caller-assigned id. The store owns its
// regions by value: lookups return copies, and an id that has been removed
// can never resolve.
//
// A Store performs no internal synchronization; callers that share one
// across goroutines must serialize access.
package store

import (
	"sort"

	"github.com/chazu/srs/pkg/region"
)

// Store maps region ids to regions.
type Store struct {
	regions map[int]region.Region
}

// New creates an empty Store.
func New() *Store {
	return &Store{regions: make(map[int]region.Region)}
}

// Insert adds r. It fails with *DuplicateIDError if r.ID is already
// present, leaving the store unchanged.
func (s *Store) Insert(r region.Region) error {
	if _, exists := s.regions[r.ID]; exists {
		return &DuplicateIDError{ID: r.ID}
	}
	s.regions[r.ID] = r
	return nil
}

// Remove deletes the region with the given id and returns it. It fails
// with *UnknownShapeError if the id is absent.
func (s *Store) Remove(id int) (region.Region, error) {
	r, ok := s.regions[id]
	if !ok {
		return region.Region{}, &UnknownShapeError{ID: id}
	}
	delete(s.regions, id)
	return r, nil
}

// Get returns the region with the given id, or *UnknownShapeError.
func (s *Store) Get(id int) (region.Region, error) {
	r, ok := s.regions[id]
	if !ok {
		return region.Region{}, &UnknownShapeError{ID: id}
	}
	return r, nil
}

// Has reports whether id is present.
func (s *Store) Has(id int) bool {
	_, ok := s.regions[id]
	return ok
}

// Len returns the number of stored regions.
func (s *Store) Len() int {
	return len(s.regions)
}

// IDs returns all stored ids in ascending order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.regions))
	for id := range s.regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Each calls fn for every region in ascending id order, stopping early if
// fn returns false.
func (s *Store) Each(fn func(region.Region) bool) {
	for _, id := range s.IDs() {
		if !fn(s.regions[id]) {
			return
		}
	}
}
