package script

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/golang/geo/r2"
)

// sexpVec2 carries a 2D vector between builtins.
type sexpVec2 struct {
	p r2.Point
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", v.p.X, v.p.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// kwArgs is an argument list split into keyword and positional parts.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits args on the keyword markers left by preprocess. A
// trailing keyword with no value maps to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	res := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := keywordName(args[i])
		if !ok {
			res.positional = append(res.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			res.kw[name] = args[i+1]
			i++
		} else {
			res.kw[name] = zygo.SexpNull
		}
	}
	return res
}

// float returns the numeric keyword argument name, or def when absent.
func (a kwArgs) float(name string, def float64) (float64, error) {
	v, ok := a.kw[name]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// requireFloat is float without a default.
func (a kwArgs) requireFloat(name string) (float64, error) {
	if _, ok := a.kw[name]; !ok {
		return 0, fmt.Errorf("missing :%s", name)
	}
	return a.float(name, 0)
}

func (a kwArgs) requireInt(name string) (int, error) {
	v, ok := a.kw[name]
	if !ok {
		return 0, fmt.Errorf("missing :%s", name)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func (a kwArgs) str(name string) (string, error) {
	v, ok := a.kw[name]
	if !ok {
		return "", nil
	}
	s, err := toString(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

func (a kwArgs) point(name string, def r2.Point) (r2.Point, error) {
	v, ok := a.kw[name]
	if !ok {
		return def, nil
	}
	p, err := toPoint(v)
	if err != nil {
		return r2.Point{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func keywordName(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toInt accepts integers and floats with no fractional part.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) {
			return int(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

// toString accepts plain strings and keywords, so (query :RCC_PP 1 2) and
// (query "RCC_PP" 1 2) are equivalent.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return strings.TrimPrefix(str.S, kwPrefix), nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

// toPoint accepts a vec2 or a two-element numeric list.
func toPoint(s zygo.Sexp) (r2.Point, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.p, nil
	}
	items, err := toSlice(s)
	if err != nil || len(items) != 2 {
		return r2.Point{}, fmt.Errorf("expected vec2, got %s", describe(s))
	}
	x, err := toFloat64(items[0])
	if err != nil {
		return r2.Point{}, err
	}
	y, err := toFloat64(items[1])
	if err != nil {
		return r2.Point{}, err
	}
	return r2.Point{X: x, Y: y}, nil
}

// toSlice converts a list or array to a Go slice. The empty list is nil.
func toSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list, got %s", describe(s))
}

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}
