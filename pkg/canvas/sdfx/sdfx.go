// Package sdfx implements canvas.Canvas with the github.com/deadsy/sdfx
// signed-distance-field library. Each drawn region is kept as an sdf.SDF2;
// Snapshot unions them and rasterizes the scene to a PNG file.
package sdfx

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chazu/srs/pkg/canvas"
	"github.com/chazu/srs/pkg/kernel"
	"github.com/chazu/srs/pkg/region"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/golang/geo/r2"
)

// Compile-time interface check.
var _ canvas.Canvas = (*Canvas)(nil)

// ErrEmptyScene is returned by Snapshot when nothing has been drawn.
var ErrEmptyScene = errors.New("sdfx: no regions to render")

// Default surface used until Init is called.
const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultScale  = 10
)

// Canvas is an offscreen scene of region distance fields.
type Canvas struct {
	width, height int
	scale         float64
	shapes        map[int]sdf.SDF2
}

// New returns an empty Canvas with the default surface size.
func New() *Canvas {
	return &Canvas{
		width:  defaultWidth,
		height: defaultHeight,
		scale:  defaultScale,
		shapes: make(map[int]sdf.SDF2),
	}
}

// Init sets the pixel size of the surface and the pixels per world unit.
// The world origin is at the center of the image.
func (c *Canvas) Init(width, height, scale float64) error {
	if width < 1 || height < 1 || scale <= 0 {
		return fmt.Errorf("sdfx: invalid surface %gx%g at scale %g", width, height, scale)
	}
	c.width, c.height, c.scale = int(width), int(height), scale
	return nil
}

// Draw converts r to a distance field and adds it to the scene, replacing
// any field previously drawn under the same id.
func (c *Canvas) Draw(r region.Region) error {
	s, err := ToSDF(r.Shape)
	if err != nil {
		return fmt.Errorf("sdfx: draw %s: %w", r.Label(), err)
	}
	c.shapes[r.ID] = s
	return nil
}

// Erase drops the field drawn for id. Erasing an id that was never drawn is
// not an error.
func (c *Canvas) Erase(id int) error {
	delete(c.shapes, id)
	return nil
}

// Len returns the number of drawn regions.
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// Inside reports whether p is inside or on the field drawn for id, by the
// sign of the distance.
func (c *Canvas) Inside(id int, p r2.Point) (bool, error) {
	s, ok := c.shapes[id]
	if !ok {
		return false, fmt.Errorf("sdfx: shape %d not drawn", id)
	}
	return s.Evaluate(v2.Vec{X: p.X, Y: p.Y}) <= 0, nil
}

// Scene returns the union of all drawn fields in ascending id order.
func (c *Canvas) Scene() (sdf.SDF2, error) {
	if len(c.shapes) == 0 {
		return nil, ErrEmptyScene
	}
	ids := make([]int, 0, len(c.shapes))
	for id := range c.shapes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fields := make([]sdf.SDF2, 0, len(ids))
	for _, id := range ids {
		fields = append(fields, c.shapes[id])
	}
	if len(fields) == 1 {
		return fields[0], nil
	}
	return sdf.Union2D(fields...), nil
}

// Bounds returns the world-space box covered by the surface.
func (c *Canvas) Bounds() sdf.Box2 {
	hw := float64(c.width) / c.scale / 2
	hh := float64(c.height) / c.scale / 2
	return sdf.Box2{Min: v2.Vec{X: -hw, Y: -hh}, Max: v2.Vec{X: hw, Y: hh}}
}

// Snapshot rasterizes the scene to a PNG at path.
func (c *Canvas) Snapshot(path string) error {
	scene, err := c.Scene()
	if err != nil {
		return err
	}
	png, err := render.NewPNG(path, c.Bounds(), v2i.Vec{X: c.width, Y: c.height})
	if err != nil {
		return fmt.Errorf("sdfx: snapshot: %w", err)
	}
	png.RenderSDF2(scene)
	if err := png.Save(); err != nil {
		return fmt.Errorf("sdfx: snapshot: %w", err)
	}
	return nil
}

// ToSDF converts a kernel shape to a 2D distance field.
func ToSDF(s kernel.Shape) (sdf.SDF2, error) {
	switch s := s.(type) {
	case kernel.Circle:
		disc, err := sdf.Circle2D(s.Radius)
		if err != nil {
			return nil, err
		}
		m := sdf.Translate2d(v2.Vec{X: s.Center.X, Y: s.Center.Y})
		return sdf.Transform2D(disc, m), nil
	case kernel.Polygon:
		vs := make([]v2.Vec, len(s.Vertices))
		for i, p := range s.Vertices {
			vs[i] = v2.Vec{X: p.X, Y: p.Y}
		}
		return sdf.Polygon2D(vs)
	default:
		return nil, fmt.Errorf("unhandled shape %T", s)
	}
}
