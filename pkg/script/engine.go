// Package script evaluates scene scripts: small zygomys programs that
// build a set of regions and ask qualitative questions about them.
//
//	(canvas :width 800 :height 600 :scale 10)
//	(circle :id 1 :name "room" :x 0 :y 0 :r 10)
//	(circle :id 2 :name "chair" :x 1 :y 1 :r 1 :facing (vec2 0 1))
//	(query :RCC_PP 1 2)   ; => 1
//	(relation 1 2)        ; => "PP"
//	(orientations)
//
// Scripts are declarative descriptions evaluated in a sandbox with no
// filesystem or system access.
package script

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/srs/pkg/srs"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/google/uuid"
)

// EvalError is a non-fatal error in user code, such as a parse error or a
// rejected insert.
type EvalError struct {
	Line    int
	Col     int
	Message string

	// Err is the underlying error when a builtin rejected its arguments,
	// for example a duplicate id.
	Err error
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e EvalError) Unwrap() error { return e.Err }

// EvalWarning is advisory output: suspicious geometry or a canvas failure.
type EvalWarning struct {
	ID      int
	Message string
}

func (w EvalWarning) String() string {
	return fmt.Sprintf("shape %d: %s", w.ID, w.Message)
}

// QueryRecord is one query a script asked and its answer.
type QueryRecord struct {
	Type      srs.QueryType
	Reference int
	Primary   int
	Value     int
}

// Result is everything a successful evaluation produced. System holds the
// final scene and can be queried further; Value is the printed form of the
// last expression.
type Result struct {
	RunID    string
	System   *srs.System
	Value    string
	Output   []string
	Queries  []QueryRecord
	Warnings []EvalWarning
}

// Engine evaluates scene scripts. It is safe for concurrent use; each
// Evaluate builds a fresh sandbox and a fresh System.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	timeout time.Duration
	log     *slog.Logger
	sysOpts []srs.Option
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the engine logger. Each run logs with its run id.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSystemOptions passes opts to the System created for every run.
func WithSystemOptions(opts ...srs.Option) Option {
	return func(e *Engine) { e.sysOpts = append(e.sysOpts, opts...) }
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		timeout: DefaultTimeout,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs source against a new System.
//
// Return semantics:
//   - success: result, nil, nil
//   - parse or runtime failure in user code: nil, eval errors, nil
//   - timeout, panic or a superseded run: nil, nil, error
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	runID := uuid.NewString()
	log := e.log.With("run", runID)
	log.Debug("evaluation started", "bytes", len(source))

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		res, evalErrs, err := e.evaluate(source, runID, log)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	res, evalErrs, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.timeout)
	switch {
	case err != nil:
		log.Error("evaluation failed", "error", err)
	case len(evalErrs) > 0:
		log.Info("evaluation reported errors", "count", len(evalErrs))
	default:
		log.Debug("evaluation finished", "regions", res.System.Len(), "queries", len(res.Queries))
	}
	return res, evalErrs, err
}

func (e *Engine) evaluate(source, runID string, log *slog.Logger) (*Result, []EvalError, error) {
	res := &Result{
		RunID:  runID,
		System: srs.New(append([]srs.Option{srs.WithLogger(log)}, e.sysOpts...)...),
	}
	if strings.TrimSpace(source) == "" {
		return res, nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	b := registerBuiltins(env, res)

	if err := env.LoadString(preprocess(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	out, err := env.Run()
	if err != nil {
		evalErrs := parseZygomysError(err)
		if b.failure != nil {
			evalErrs[0].Message = b.failure.Error()
			evalErrs[0].Err = b.failure
		}
		return nil, evalErrs, nil
	}
	if out != nil {
		res.Value = out.SexpString(nil)
	}
	return res, nil, nil
}

var (
	// zygomys reports "Error on line N: ..." for most failures.
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError extracts a line number from a zygomys error when the
// message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
