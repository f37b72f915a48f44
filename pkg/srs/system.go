package srs

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/chazu/srs/pkg/canvas"
	"github.com/chazu/srs/pkg/metrics"
	"github.com/chazu/srs/pkg/region"
	"github.com/chazu/srs/pkg/relation"
	"github.com/chazu/srs/pkg/store"
	"github.com/golang/geo/r2"
)

// System answers qualitative queries over the regions it stores.
type System struct {
	store   *store.Store
	canvas  canvas.Canvas
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a System.
type Option func(*System)

// WithCanvas sets the visualization collaborator. The default discards
// every notification.
func WithCanvas(c canvas.Canvas) Option {
	return func(s *System) {
		if c != nil {
			s.canvas = c
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics enables metric collection.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *System) { s.metrics = m }
}

// New creates an empty System.
func New(opts ...Option) *System {
	s := &System{
		store:  store.New(),
		canvas: canvas.Headless{},
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitCanvas configures the visualization surface. It holds no geometric
// state; a canvas failure is returned but leaves the System usable.
func (s *System) InitCanvas(width, height, scale float64) error {
	if err := s.canvas.Init(width, height, scale); err != nil {
		return fmt.Errorf("init canvas: %w", err)
	}
	return nil
}

// InsertCircle adds a circle centered at (x, y) facing (i, j).
func (s *System) InsertCircle(x, y, radius, i, j float64, id int, name string) error {
	r, err := region.NewCircle(id, name, r2.Point{X: x, Y: y}, radius, r2.Point{X: i, Y: j})
	if err != nil {
		s.reject(err)
		return err
	}
	return s.insert(r)
}

// InsertPolygon adds a polygon with the given vertices facing (i, j).
func (s *System) InsertPolygon(points []r2.Point, i, j float64, id int, name string) error {
	r, err := region.NewPolygon(id, name, points, r2.Point{X: i, Y: j})
	if err != nil {
		s.reject(err)
		return err
	}
	return s.insert(r)
}

func (s *System) insert(r region.Region) error {
	if err := s.store.Insert(r); err != nil {
		s.reject(err)
		return err
	}
	for _, w := range region.Validate(r) {
		s.log.Warn("suspicious region", "id", w.ID, "warning", w.Message)
	}
	if err := s.canvas.Draw(r); err != nil {
		s.log.Warn("canvas draw failed", "id", r.ID, "error", err)
	}
	s.log.Debug("region inserted", "id", r.ID, "kind", r.Kind().String(), "name", r.Name)
	if s.metrics != nil {
		s.metrics.InsertsTotal.Inc()
		s.metrics.Regions.Set(float64(s.store.Len()))
	}
	return nil
}

// RemoveShape deletes the region with the given id and asks the canvas to
// erase it.
func (s *System) RemoveShape(id int) error {
	if _, err := s.store.Remove(id); err != nil {
		s.reject(err)
		return err
	}
	if err := s.canvas.Erase(id); err != nil {
		s.log.Warn("canvas erase failed", "id", id, "error", err)
	}
	s.log.Debug("region removed", "id", id)
	if s.metrics != nil {
		s.metrics.RemovalsTotal.Inc()
		s.metrics.Regions.Set(float64(s.store.Len()))
	}
	return nil
}

// TwoObjectQuery evaluates t for primary with respect to reference. RCC
// query types return 1 when the relation holds and 0 otherwise; the
// orientation types return the sector code, or relation.SectorUndefined
// when the centroids coincide.
func (s *System) TwoObjectQuery(t QueryType, referenceID, primaryID int) (int, error) {
	start := time.Now()
	v, err := s.query(t, referenceID, primaryID)
	if s.metrics != nil {
		if err != nil {
			s.metrics.QueryErrorsTotal.WithLabelValues(errorReason(err)).Inc()
		} else {
			s.metrics.QueriesTotal.WithLabelValues(t.String()).Inc()
			s.metrics.QueryDurationMicro.Observe(float64(time.Since(start).Microseconds()))
		}
	}
	if err != nil {
		return 0, err
	}
	s.log.Debug("query", "type", t.String(), "reference", referenceID, "primary", primaryID, "result", v)
	return v, nil
}

func (s *System) query(t QueryType, referenceID, primaryID int) (int, error) {
	if t < RCC_DR || t > ALLOCENTRIC_ORIENTATION {
		return 0, &UnknownQueryError{Code: int(t)}
	}
	ref, pri, err := s.pair(referenceID, primaryID)
	if err != nil {
		return 0, err
	}
	switch t {
	case ORIENTATION:
		return int(relation.Direction(ref, pri)), nil
	case ALLOCENTRIC_ORIENTATION:
		return int(relation.AllocentricDirection(ref, pri)), nil
	}
	if relation.Topology(ref, pri) == t.rcc() {
		return 1, nil
	}
	return 0, nil
}

// Relation returns the RCC relation of primary with respect to reference.
func (s *System) Relation(referenceID, primaryID int) (relation.RCC, error) {
	ref, pri, err := s.pair(referenceID, primaryID)
	if err != nil {
		return 0, err
	}
	return relation.Topology(ref, pri), nil
}

// Region returns a copy of the stored region with the given id.
func (s *System) Region(id int) (region.Region, error) {
	return s.store.Get(id)
}

// Regions returns copies of every stored region in ascending id order.
func (s *System) Regions() []region.Region {
	out := make([]region.Region, 0, s.store.Len())
	s.store.Each(func(r region.Region) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Len returns the number of stored regions.
func (s *System) Len() int { return s.store.Len() }

func (s *System) pair(referenceID, primaryID int) (region.Region, region.Region, error) {
	ref, err := s.store.Get(referenceID)
	if err != nil {
		return region.Region{}, region.Region{}, err
	}
	pri, err := s.store.Get(primaryID)
	if err != nil {
		return region.Region{}, region.Region{}, err
	}
	return ref, pri, nil
}

func (s *System) reject(err error) {
	s.log.Debug("operation rejected", "error", err)
	if s.metrics != nil {
		s.metrics.RejectedTotal.WithLabelValues(errorReason(err)).Inc()
	}
}
