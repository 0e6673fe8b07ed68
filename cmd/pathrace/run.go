package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathrace/algorithms"
	"github.com/katalvlaran/pathrace/grid"
	"github.com/katalvlaran/pathrace/internal/config"
	"github.com/katalvlaran/pathrace/maze"
	"github.com/katalvlaran/pathrace/render"
	"github.com/katalvlaran/pathrace/session"
)

// runOptions are the flags of the run command.
type runOptions struct {
	preset     string
	layoutFile string
	width      int
	height     int
	seed       int64
	algorithms string
	pngPath    string
	animate    bool
	quiet      bool
}

func parseRunFlags(cfg *config.Config, args []string, stderr io.Writer) (runOptions, error) {
	var o runOptions
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.preset, "preset", cfg.Grid.Preset, "layout preset")
	fs.StringVar(&o.layoutFile, "layout", "", "text layout file (overrides -preset)")
	fs.IntVar(&o.width, "width", cfg.Grid.Width, "grid width")
	fs.IntVar(&o.height, "height", cfg.Grid.Height, "grid height")
	fs.Int64Var(&o.seed, "seed", cfg.Grid.Seed, "preset seed (0 selects the default)")
	fs.StringVar(&o.algorithms, "algorithms", cfg.Session.Algorithms, "comma-separated algorithms")
	fs.StringVar(&o.pngPath, "png", "", "write a PNG of the final state to this path")
	fs.BoolVar(&o.animate, "animate", false, "wait SESSION_STEP_DELAY between rounds")
	fs.BoolVar(&o.quiet, "quiet", false, "print only the stats table")
	if err := fs.Parse(args); err != nil {
		return o, errors.Join(errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return o, errUsage
	}
	return o, nil
}

func loadLayout(o runOptions) (*grid.Layout, error) {
	if o.layoutFile != "" {
		b, err := os.ReadFile(o.layoutFile)
		if err != nil {
			return nil, err
		}
		return grid.Parse(string(b))
	}
	p, err := maze.ParsePreset(o.preset)
	if err != nil {
		return nil, err
	}
	return maze.Build(p, o.width, o.height, o.seed)
}

func runCommand(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string, stdout, stderr io.Writer) error {
	o, err := parseRunFlags(cfg, args, stderr)
	if err != nil {
		return err
	}

	layout, err := loadLayout(o)
	if err != nil {
		return err
	}
	kinds, err := algorithms.ParseKinds(o.algorithms)
	if err != nil {
		return err
	}
	pfs, err := algorithms.NewAll(kinds, layout.Grid)
	if err != nil {
		return err
	}
	sess, err := session.New(layout, pfs,
		session.WithLogger(logger),
		session.WithMaxSteps(cfg.Session.MaxSteps))
	if err != nil {
		return err
	}

	delay := cfg.Session.StepDelay
	if !o.animate {
		delay = 0
	}
	if err := sess.Run(ctx, delay); err != nil {
		return err
	}

	views := sess.Snapshot()
	if !o.quiet {
		for _, v := range views {
			if err := render.Text(stdout, layout, v); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
		}
	}
	if err := writeTable(stdout, views, sess.Summary()); err != nil {
		return err
	}

	if o.pngPath != "" {
		opts := render.DefaultOptions()
		opts.CellSize, opts.Columns = cfg.Render.CellSize, cfg.Render.Columns
		if err := render.SavePNG(o.pngPath, layout, views, opts); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		logger.Info("image written", zap.String("path", o.pngPath))
	}
	return nil
}

func writeTable(w io.Writer, views []session.SlotView, sum session.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tALGORITHM\tFOUND\tCOST\tLENGTH\tSTEPS\tEXPLORED\t")
	for _, v := range views {
		mark := ""
		if v.Slot == sum.Best {
			mark = " (best)"
		}
		cost, length := "-", "-"
		if v.Stats.Found {
			cost, length = fmt.Sprint(v.Stats.PathCost), fmt.Sprint(v.Stats.PathLength)
		}
		fmt.Fprintf(tw, "%d\t%s%s\t%t\t%s\t%s\t%d\t%d\t\n",
			v.Slot, v.Name, mark, v.Stats.Found, cost, length, v.Stats.Steps, v.Stats.Explored)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "rounds: %d  mean steps: %.1f  mean explored: %.1f\n",
		sum.Rounds, sum.MeanSteps, sum.MeanExplored)
	return err
}
