package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chazu/srs/pkg/canvas"
	"github.com/chazu/srs/pkg/canvas/sdfx"
	"github.com/chazu/srs/pkg/config"
	"github.com/chazu/srs/pkg/metrics"
	"github.com/chazu/srs/pkg/relation"
	"github.com/chazu/srs/pkg/script"
	"github.com/chazu/srs/pkg/srs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// errEval marks a script that failed in user code. The individual errors
// have already been printed.
var errEval = errors.New("scene script failed")

// cli holds the flag values and output streams shared by the subcommands.
type cli struct {
	stdout, stderr io.Writer

	configPath  string
	logLevel    string
	pngPath     string
	showMetrics bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "srs",
		Short:         "Qualitative spatial reasoning over 2D regions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	pf.StringVar(&c.pngPath, "png", "", "write a PNG snapshot of the final scene to this path")
	pf.BoolVar(&c.showMetrics, "metrics", false, "print collected metrics after the run")

	root.AddCommand(c.runCmd(), c.orientationsCmd(), c.queryCmd())
	return root
}

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scene.lisp>",
		Short: "Evaluate a scene script and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(args[0], func(res *script.Result) error {
				for _, q := range res.Queries {
					fmt.Fprintf(c.stdout, "%s(%d, %d) = %d\n", q.Type, q.Reference, q.Primary, q.Value)
				}
				for _, line := range res.Output {
					fmt.Fprintln(c.stdout, line)
				}
				return nil
			})
		},
	}
}

func (c *cli) orientationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orientations <scene.lisp>",
		Short: "Evaluate a scene script and print the direction of every region from every other",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(args[0], func(res *script.Result) error {
				return res.System.PrintAllRelativeOrientations(c.stdout)
			})
		},
	}
}

func (c *cli) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <scene.lisp> <TYPE> <reference> <primary>",
		Short: "Evaluate a scene script and answer a single two-object query",
		Long: `Evaluate a scene script and answer a single two-object query.

TYPE is one of RCC_DR, RCC_PO, RCC_EQ, RCC_PP, RCC_PPI, ORIENTATION or
ALLOCENTRIC_ORIENTATION. RCC types print 1 when the relation holds and 0
otherwise; orientation types print the sector code and name.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			qt, err := srs.ParseQueryType(args[1])
			if err != nil {
				return err
			}
			var ref, pri int
			if _, err := fmt.Sscan(args[2], &ref); err != nil {
				return fmt.Errorf("reference id %q: %w", args[2], err)
			}
			if _, err := fmt.Sscan(args[3], &pri); err != nil {
				return fmt.Errorf("primary id %q: %w", args[3], err)
			}
			return c.session(args[0], func(res *script.Result) error {
				v, err := res.System.TwoObjectQuery(qt, ref, pri)
				if err != nil {
					return err
				}
				if qt.IsRCC() {
					fmt.Fprintln(c.stdout, v)
				} else {
					fmt.Fprintf(c.stdout, "%d %s\n", v, relation.Sector(v))
				}
				return nil
			})
		},
	}
}

// session evaluates the scene at path, hands the result to fn and then
// writes the optional snapshot and metrics.
func (c *cli) session(path string, fn func(*script.Result) error) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	var cv canvas.Canvas = canvas.Headless{}
	var snap *sdfx.Canvas
	if cfg.Canvas.PNG != "" {
		snap = sdfx.New()
		cv = snap
	}
	if err := cv.Init(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Scale); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	eng := script.NewEngine(
		script.WithTimeout(cfg.Script.Timeout),
		script.WithLogger(log),
		script.WithSystemOptions(srs.WithCanvas(cv), srs.WithMetrics(m)),
	)
	res, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(c.stderr, "%s: %s\n", path, e.Error())
		}
		return errEval
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(c.stderr, "%s: warning: %s\n", path, w)
	}

	if err := fn(res); err != nil {
		return err
	}

	if snap != nil {
		if err := snap.Snapshot(cfg.Canvas.PNG); err != nil {
			log.Warn("snapshot failed", "path", cfg.Canvas.PNG, "error", err)
		} else {
			log.Info("snapshot written", "path", cfg.Canvas.PNG, "regions", snap.Len())
		}
	}
	if c.showMetrics {
		return writeMetrics(c.stdout, reg)
	}
	return nil
}

// config loads the configuration file, if any, and applies flag overrides.
func (c *cli) config() (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.pngPath != "" {
		cfg.Canvas.PNG = c.pngPath
	}
	return cfg, cfg.Validate()
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
