package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chazu/srs/pkg/region"
	"github.com/chazu/srs/pkg/srs"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/golang/geo/r2"
)

// defaultFacing is used when a shape has no :facing argument.
var defaultFacing = r2.Point{X: 1, Y: 0}

// registerBuiltins installs the scene builtins. They mutate res.System
// and append to res as the script runs. Source must have gone through
// preprocess so that keyword arguments are recognizable.
func registerBuiltins(env *zygo.Zlisp, res *Result) *builtins {
	b := &builtins{res: res}
	for name, fn := range map[string]func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error){
		"vec2":         b.vec2,
		"canvas":       b.canvas,
		"circle":       b.circle,
		"polygon":      b.polygon,
		"remove":       b.remove,
		"query":        b.query,
		"relation":     b.relation,
		"orientations": b.orientations,
		"region_count": b.regionCount,
	} {
		env.AddFunction(name, b.record(fn))
	}
	return b
}

type builtins struct {
	res *Result

	// failure is the first error a builtin returned. zygomys flattens
	// errors to text; keeping this one preserves errors.Is.
	failure error
}

func (b *builtins) record(fn func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error)) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		out, err := fn(env, name, args)
		if err != nil && b.failure == nil {
			b.failure = err
		}
		return out, err
	}
}

func (b *builtins) sys() *srs.System { return b.res.System }

// (vec2 x y)
func (b *builtins) vec2(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
	}
	x, err := toFloat64(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
	}
	y, err := toFloat64(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
	}
	return &sexpVec2{p: r2.Point{X: x, Y: y}}, nil
}

// (canvas :width 800 :height 600 :scale 10)
//
// A canvas that refuses the surface is reported as a warning; the scene
// still evaluates.
func (b *builtins) canvas(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	width, err := pa.float("width", 800)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("canvas: %w", err)
	}
	height, err := pa.float("height", 600)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("canvas: %w", err)
	}
	scale, err := pa.float("scale", 10)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("canvas: %w", err)
	}
	if err := b.sys().InitCanvas(width, height, scale); err != nil {
		b.res.Warnings = append(b.res.Warnings, EvalWarning{Message: err.Error()})
	}
	return zygo.SexpNull, nil
}

// (circle :id 1 :name "a" :x 0 :y 0 :r 1 :facing (vec2 1 0))
func (b *builtins) circle(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	id, label, facing, err := shapeCommon(pa)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("circle: %w", err)
	}
	x, err := pa.requireFloat("x")
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("circle: %w", err)
	}
	y, err := pa.requireFloat("y")
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("circle: %w", err)
	}
	r, err := pa.requireFloat("r")
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("circle: %w", err)
	}
	if err := b.sys().InsertCircle(x, y, r, facing.X, facing.Y, id, label); err != nil {
		return zygo.SexpNull, fmt.Errorf("circle: %w", err)
	}
	b.validate(id)
	return &zygo.SexpInt{Val: int64(id)}, nil
}

// (polygon :id 2 :name "b" :points (list (vec2 0 0) (vec2 4 0) (vec2 4 4)))
func (b *builtins) polygon(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	id, label, facing, err := shapeCommon(pa)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
	}
	v, ok := pa.kw["points"]
	if !ok {
		return zygo.SexpNull, errors.New("polygon: missing :points")
	}
	items, err := toSlice(v)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("polygon: points: %w", err)
	}
	points := make([]r2.Point, 0, len(items))
	for i, item := range items {
		p, err := toPoint(item)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: point %d: %w", i, err)
		}
		points = append(points, p)
	}
	if err := b.sys().InsertPolygon(points, facing.X, facing.Y, id, label); err != nil {
		return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
	}
	b.validate(id)
	return &zygo.SexpInt{Val: int64(id)}, nil
}

func shapeCommon(pa kwArgs) (id int, name string, facing r2.Point, err error) {
	if id, err = pa.requireInt("id"); err != nil {
		return
	}
	if name, err = pa.str("name"); err != nil {
		return
	}
	facing, err = pa.point("facing", defaultFacing)
	return
}

// validate records advisory warnings for the region just inserted.
func (b *builtins) validate(id int) {
	r, err := b.sys().Region(id)
	if err != nil {
		return
	}
	for _, w := range region.Validate(r) {
		b.res.Warnings = append(b.res.Warnings, EvalWarning{ID: w.ID, Message: w.Message})
	}
}

// (remove 2)
func (b *builtins) remove(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("remove requires an id, got %d arguments", len(args))
	}
	id, err := toInt(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("remove: %w", err)
	}
	if err := b.sys().RemoveShape(id); err != nil {
		return zygo.SexpNull, fmt.Errorf("remove: %w", err)
	}
	return zygo.SexpNull, nil
}

// (query "RCC_PP" reference primary) => integer
func (b *builtins) query(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 3 {
		return zygo.SexpNull, fmt.Errorf("query requires a type, a reference id and a primary id, got %d arguments", len(args))
	}
	typeName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("query: type: %w", err)
	}
	qt, err := srs.ParseQueryType(strings.ToUpper(typeName))
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("query: %w", err)
	}
	ref, pri, err := idPair(args[1], args[2])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("query: %w", err)
	}
	v, err := b.sys().TwoObjectQuery(qt, ref, pri)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("query: %w", err)
	}
	b.res.Queries = append(b.res.Queries, QueryRecord{Type: qt, Reference: ref, Primary: pri, Value: v})
	return &zygo.SexpInt{Val: int64(v)}, nil
}

// (relation reference primary) => "DR" | "PO" | "EQ" | "PP" | "PPI"
func (b *builtins) relation(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("relation requires a reference id and a primary id, got %d arguments", len(args))
	}
	ref, pri, err := idPair(args[0], args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("relation: %w", err)
	}
	rel, err := b.sys().Relation(ref, pri)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("relation: %w", err)
	}
	return &zygo.SexpStr{S: rel.String()}, nil
}

// (orientations) appends the direction sweep to the output and returns
// the number of lines written.
func (b *builtins) orientations(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	lines := b.sys().Orientations()
	for _, o := range lines {
		b.res.Output = append(b.res.Output, o.String())
	}
	return &zygo.SexpInt{Val: int64(len(lines))}, nil
}

// (region-count)
func (b *builtins) regionCount(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	return &zygo.SexpInt{Val: int64(b.sys().Len())}, nil
}

func idPair(a, b zygo.Sexp) (int, int, error) {
	ref, err := toInt(a)
	if err != nil {
		return 0, 0, fmt.Errorf("reference: %w", err)
	}
	pri, err := toInt(b)
	if err != nil {
		return 0, 0, fmt.Errorf("primary: %w", err)
	}
	return ref, pri, nil
}
