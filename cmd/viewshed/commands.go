package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/urfave/cli"

	"github.com/katalvlaran/viewshed/asciigrid"
	"github.com/katalvlaran/viewshed/grid"
	"github.com/katalvlaran/viewshed/render"
	"github.com/katalvlaran/viewshed/sweep"
	"github.com/katalvlaran/viewshed/tiles"
	"github.com/katalvlaran/viewshed/viewcount"
)

var errUsage = errors.New("wrong number of arguments")

// tool carries per-run state shared by the subcommands.
type tool struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
	cfg    *Config
	quiet  bool
}

func newTool(ctx context.Context, stdout, stderr io.Writer) *tool {
	return &tool{
		ctx:    ctx,
		stdout: stdout,
		stderr: stderr,
		log:    log.New(stderr, "viewshed: ", 0),
	}
}

func (t *tool) app() *cli.App {
	app := cli.NewApp()
	app.Name = "viewshed"
	app.Usage = "viewsheds and view counts over ESRI ASCII grids"
	app.Writer = t.stdout
	app.ErrWriter = t.stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Usage: "JSON file with tool defaults"},
		cli.IntFlag{Name: "workers", Usage: "concurrent sweeps (default GOMAXPROCS)"},
		cli.BoolFlag{Name: "quiet", Usage: "disable the progress bar and timing logs"},
	}
	app.Before = t.setup

	epsilon := cli.Float64Flag{Name: "epsilon", Usage: "square decomposition tolerance"}
	row := cli.IntFlag{Name: "row", Usage: "viewpoint row"}
	col := cli.IntFlag{Name: "col", Usage: "viewpoint column"}

	app.Commands = []cli.Command{
		{
			Name:      "vshed",
			Usage:     "viewshed from one cell; approximate when --epsilon is given",
			ArgsUsage: "in.asc out.asc",
			Flags:     []cli.Flag{row, col, epsilon},
			Action:    t.vshed,
		},
		{
			Name:      "vcount",
			Usage:     "exact view count of every cell",
			ArgsUsage: "in.asc out.asc",
			Action:    t.vcount,
		},
		{
			Name:      "avcount",
			Usage:     "approximate view count over a square decomposition",
			ArgsUsage: "in.asc out.asc",
			Flags:     []cli.Flag{epsilon},
			Action:    t.avcount,
		},
		{
			Name:      "svcount",
			Usage:     "view count on a block-averaged grid",
			ArgsUsage: "in.asc out.asc",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "block", Usage: "block size k"},
				cli.BoolFlag{Name: "area-scaling", Usage: "multiply counts by k²"},
			},
			Action: t.svcount,
		},
		{
			Name:      "nnvcount",
			Usage:     "nearest-neighbor smoothing of a count grid",
			ArgsUsage: "counts.asc out.asc",
			Flags:     []cli.Flag{cli.IntFlag{Name: "neighborhood", Usage: "window size k"}},
			Action:    t.nnvcount,
		},
		{
			Name:      "info",
			Usage:     "print header and statistics",
			ArgsUsage: "in.asc",
			Flags:     []cli.Flag{epsilon},
			Action:    t.info,
		},
		{
			Name:      "diff",
			Usage:     "cell-wise a − b",
			ArgsUsage: "a.asc b.asc out.asc",
			Action:    t.diff,
		},
		{
			Name:      "simp",
			Usage:     "stride-downsample so neither side exceeds --max-side",
			ArgsUsage: "in.asc out.asc",
			Flags:     []cli.Flag{cli.IntFlag{Name: "max-side", Usage: "largest side of the output"}},
			Action:    t.simp,
		},
		{
			Name:      "render",
			Usage:     "write a PNG heatmap, optionally with a viewshed overlay",
			ArgsUsage: "in.asc out.png",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "colorizer", Usage: "greyscale, bgr, topo or flow"},
				cli.StringFlag{Name: "title", Usage: "plot title"},
				cli.Float64Flag{Name: "exponent", Usage: "value exponent before colouring"},
				cli.StringFlag{Name: "viewshed", Usage: "viewshed grid to overlay"},
				row, col,
			},
			Action: t.render,
		},
	}
	return app
}

// setup loads the config file and global switches.
func (t *tool) setup(c *cli.Context) error {
	t.quiet = c.GlobalBool("quiet")
	if path := c.GlobalString("config"); path != "" {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		t.cfg = cfg
	}
	if c.GlobalIsSet("workers") && c.GlobalInt("workers") < 1 {
		return fmt.Errorf("--workers must be >= 1, got %d", c.GlobalInt("workers"))
	}
	return nil
}

// countOptions assembles pool options from flags and config.
func (t *tool) countOptions(c *cli.Context) []viewcount.Option {
	var opts []viewcount.Option
	workers := t.cfg.GetWorkers()
	if c.GlobalIsSet("workers") {
		workers = c.GlobalInt("workers")
	}
	if workers > 0 {
		opts = append(opts, viewcount.WithWorkers(workers))
	}
	if !t.quiet {
		var bar *pb.ProgressBar
		opts = append(opts, viewcount.WithProgress(func(done, total int) {
			if bar == nil {
				bar = pb.New(total)
				bar.Output = t.stderr
				bar.SetWidth(80)
				bar.Start()
			}
			bar.Set(done)
			if done == total {
				bar.Finish()
			}
		}))
	}
	return opts
}

func (t *tool) epsilon(c *cli.Context) (float64, error) {
	e := t.cfg.GetEpsilon()
	if c.IsSet("epsilon") {
		e = c.Float64("epsilon")
	}
	if !validEpsilon(e) {
		return 0, fmt.Errorf("--epsilon must be finite and >= 0, got %g", e)
	}
	return e, nil
}

func positiveInt(c *cli.Context, name string, fallback int) (int, error) {
	v := fallback
	if c.IsSet(name) {
		v = c.Int(name)
	}
	if v < 1 {
		return 0, fmt.Errorf("--%s must be >= 1, got %d", name, v)
	}
	return v, nil
}

func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("%s: %w: want %d (%s), got %d", c.Command.Name, errUsage, n, c.Command.ArgsUsage, c.NArg())
	}
	return c.Args()[:n], nil
}

// timed logs how long fn took unless quiet.
func (t *tool) timed(what string, fn func() error) error {
	start := time.Now()
	err := fn()
	if err == nil && !t.quiet {
		t.log.Printf("%s: %s", what, time.Since(start).Round(time.Millisecond))
	}
	return err
}

func (t *tool) vshed(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	if !c.IsSet("row") || !c.IsSet("col") {
		return fmt.Errorf("vshed: --row and --col are required")
	}
	elev, err := readGrid(a[0])
	if err != nil {
		return err
	}
	r, col := c.Int("row"), c.Int("col")

	var v *grid.Grid
	if c.IsSet("epsilon") {
		eps, err := t.epsilon(c)
		if err != nil {
			return err
		}
		err = t.timed("approximate viewshed", func() error {
			set, err := tiles.Decompose(elev, eps)
			if err != nil {
				return err
			}
			t.log.Printf("%d squares", set.Len())
			v, err = sweep.ApproxViewshedAt(elev, set, r, col)
			return err
		})
		if err != nil {
			return err
		}
	} else {
		err = t.timed("viewshed", func() error {
			v, err = sweep.Viewshed(elev, r, col)
			return err
		})
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(t.stdout, "visible: %d\n", sweep.Count(v))
	return writeGrid(a[1], v)
}

func (t *tool) vcount(c *cli.Context) error {
	return t.countCommand(c, "exact view count", func(elev *grid.Grid) (*grid.Grid, error) {
		return viewcount.Exact(t.ctx, elev, t.countOptions(c)...)
	})
}

func (t *tool) avcount(c *cli.Context) error {
	eps, err := t.epsilon(c)
	if err != nil {
		return err
	}
	return t.countCommand(c, "approximate view count", func(elev *grid.Grid) (*grid.Grid, error) {
		set, err := tiles.Decompose(elev, eps)
		if err != nil {
			return nil, err
		}
		if !t.quiet {
			t.log.Printf("%d squares for %d cells", set.Len(), elev.Len())
		}
		return viewcount.ApproxWithSet(t.ctx, elev, set, t.countOptions(c)...)
	})
}

func (t *tool) svcount(c *cli.Context) error {
	k, err := positiveInt(c, "block", t.cfg.GetBlockSize())
	if err != nil {
		return err
	}
	return t.countCommand(c, "simplified view count", func(elev *grid.Grid) (*grid.Grid, error) {
		opts := t.countOptions(c)
		if c.Bool("area-scaling") || t.cfg.GetAreaScaling() {
			opts = append(opts, viewcount.WithAreaScaling())
		}
		return viewcount.Simplified(t.ctx, elev, k, opts...)
	})
}

func (t *tool) nnvcount(c *cli.Context) error {
	k, err := positiveInt(c, "neighborhood", t.cfg.GetNeighborhood())
	if err != nil {
		return err
	}
	return t.countCommand(c, "nearest-neighbor count", func(counts *grid.Grid) (*grid.Grid, error) {
		return viewcount.NearestNeighbor(counts, k)
	})
}

// countCommand reads in, runs fn, writes out.
func (t *tool) countCommand(c *cli.Context, what string, fn func(*grid.Grid) (*grid.Grid, error)) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	in, err := readGrid(a[0])
	if err != nil {
		return err
	}
	var out *grid.Grid
	err = t.timed(what, func() error {
		out, err = fn(in)
		return err
	})
	if err != nil {
		return err
	}
	return writeGrid(a[1], out)
}

func (t *tool) info(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	g, err := readGrid(a[0])
	if err != nil {
		return err
	}
	h, s := g.Header(), grid.Stats(g)
	fmt.Fprintf(t.stdout, "ncols        %d\n", h.NCols)
	fmt.Fprintf(t.stdout, "nrows        %d\n", h.NRows)
	fmt.Fprintf(t.stdout, "xllcorner    %g\n", h.XLLCorner)
	fmt.Fprintf(t.stdout, "yllcorner    %g\n", h.YLLCorner)
	fmt.Fprintf(t.stdout, "cellsize     %g\n", h.CellSize)
	fmt.Fprintf(t.stdout, "NODATA_value %g\n", h.NoData)
	fmt.Fprintf(t.stdout, "data cells   %d of %d\n", s.DataCells, g.Len())
	if s.DataCells > 0 {
		fmt.Fprintf(t.stdout, "min          %g\n", s.Min)
		fmt.Fprintf(t.stdout, "max          %g\n", s.Max)
		fmt.Fprintf(t.stdout, "mean         %g\n", s.Mean)
		fmt.Fprintf(t.stdout, "stddev       %g\n", s.StdDev)
	}
	if c.IsSet("epsilon") {
		eps, err := t.epsilon(c)
		if err != nil {
			return err
		}
		set, err := tiles.Decompose(g, eps)
		if err != nil {
			return err
		}
		fmt.Fprintf(t.stdout, "squares      %d (epsilon %g)\n", set.Len(), eps)
	}
	return nil
}

func (t *tool) diff(c *cli.Context) error {
	a, err := args(c, 3)
	if err != nil {
		return err
	}
	x, err := readGrid(a[0])
	if err != nil {
		return err
	}
	y, err := readGrid(a[1])
	if err != nil {
		return err
	}
	d, err := grid.Diff(x, y)
	if err != nil {
		return err
	}
	s := grid.Stats(d)
	fmt.Fprintf(t.stdout, "min %g max %g mean %g\n", s.Min, s.Max, s.Mean)
	return writeGrid(a[2], d)
}

func (t *tool) simp(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	maxSide, err := positiveInt(c, "max-side", t.cfg.GetMaxSide())
	if err != nil {
		return err
	}
	f, err := os.Open(a[0])
	if err != nil {
		return err
	}
	defer f.Close()
	g, err := asciigrid.ReadDownsampled(f, maxSide)
	if err != nil {
		return fmt.Errorf("%s: %w", a[0], err)
	}
	fmt.Fprintf(t.stdout, "%dx%d\n", g.Rows(), g.Cols())
	return writeGrid(a[1], g)
}

func (t *tool) render(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	name := t.cfg.GetColorizer()
	if c.IsSet("colorizer") {
		name = c.String("colorizer")
	}
	cz, ok := render.ColorizerByName(name)
	if !ok {
		return fmt.Errorf("render: unknown colorizer %q", name)
	}
	exp := t.cfg.GetExponent()
	if c.IsSet("exponent") {
		exp = c.Float64("exponent")
	}
	if !validExponent(exp) {
		return fmt.Errorf("--exponent must be finite and > 0, got %g", exp)
	}

	g, err := readGrid(a[0])
	if err != nil {
		return err
	}
	opts := []render.Option{
		render.WithColorizer(cz),
		render.WithExponent(exp),
		render.WithTitle(c.String("title")),
	}
	if path := c.String("viewshed"); path != "" {
		if !c.IsSet("row") || !c.IsSet("col") {
			return fmt.Errorf("render: --viewshed needs --row and --col")
		}
		v, err := readGrid(path)
		if err != nil {
			return err
		}
		opts = append(opts, render.WithViewshed(v, c.Int("row"), c.Int("col")))
	}
	return t.timed("render", func() error { return render.Heatmap(g, a[1], opts...) })
}

func readGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := asciigrid.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func writeGrid(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := asciigrid.Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
