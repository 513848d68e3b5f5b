// SPDX-License-Identifier: MIT

package terrain

import (
	"math"

	"github.com/katalvlaran/viewshed/grid"
)

// Random-stream ids used by Hills.
const (
	streamBumps uint64 = iota + 1
	streamNoise
	streamHoles
)

// header returns a unit-cell header for a rows×cols synthetic grid.
func header(rows, cols int) grid.Header {
	return grid.Header{NRows: rows, NCols: cols, CellSize: 1, NoData: grid.DefaultNoData}
}

// Flat returns a rows×cols grid with every cell at elevation z.
func Flat(rows, cols int, z float64) (*grid.Grid, error) {
	g, err := grid.New(header(rows, cols))
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Store(r, c, z)
		}
	}
	return g, nil
}

// Cone returns a grid with a single conical peak of the given height at
// (pr, pc), falling off linearly by slope per cell and clamped at zero.
func Cone(rows, cols, pr, pc int, height, slope float64) (*grid.Grid, error) {
	g, err := grid.New(header(rows, cols))
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := math.Hypot(float64(r-pr), float64(c-pc))
			g.Store(r, c, math.Max(0, height-slope*d))
		}
	}
	return g, nil
}

// Random returns a grid of independent uniform samples in [0, amplitude).
func Random(rows, cols int, amplitude float64, seed int64) (*grid.Grid, error) {
	g, err := grid.New(header(rows, cols))
	if err != nil {
		return nil, err
	}
	rng := rngFromSeed(seed)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Store(r, c, rng.Float64()*amplitude)
		}
	}
	return g, nil
}

// HillsOptions configures Hills. The zero value is not useful; start from
// DefaultHillsOptions.
type HillsOptions struct {
	Bumps     int     // number of Gaussian hills
	MaxHeight float64 // peak height of the tallest hill
	Noise     float64 // amplitude of per-cell uniform noise
	Holes     float64 // probability in [0,1) that a cell is nodata
	Integer   bool    // round elevations to whole units
}

// DefaultHillsOptions returns a rolling landscape without nodata.
func DefaultHillsOptions() HillsOptions {
	return HillsOptions{Bumps: 6, MaxHeight: 100, Noise: 2}
}

// Hills returns a landscape made of Gaussian bumps plus uniform noise, with
// optional random nodata holes. The result depends only on the arguments.
// Complexity: O(r×c×bumps).
func Hills(rows, cols int, opts HillsOptions, seed int64) (*grid.Grid, error) {
	g, err := grid.New(header(rows, cols))
	if err != nil {
		return nil, err
	}

	type bump struct{ r, c, h, sigma float64 }
	br := streamRNG(seed, streamBumps)
	bumps := make([]bump, opts.Bumps)
	for i := range bumps {
		bumps[i] = bump{
			r:     br.Float64() * float64(rows),
			c:     br.Float64() * float64(cols),
			h:     opts.MaxHeight * (0.3 + 0.7*br.Float64()),
			sigma: 1 + br.Float64()*float64(max(rows, cols))/4,
		}
	}

	nr := streamRNG(seed, streamNoise)
	hr := streamRNG(seed, streamHoles)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z := nr.Float64() * opts.Noise
			for _, b := range bumps {
				dr, dc := float64(r)-b.r, float64(c)-b.c
				z += b.h * math.Exp(-(dr*dr+dc*dc)/(2*b.sigma*b.sigma))
			}
			if opts.Integer {
				z = math.Round(z)
			}
			// Draw the hole decision for every cell so the stream stays aligned.
			if hr.Float64() < opts.Holes {
				continue
			}
			g.Store(r, c, z)
		}
	}
	return g, nil
}
