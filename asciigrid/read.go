// SPDX-License-Identifier: MIT

package asciigrid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/viewshed/grid"
)

// Header keys, lower-cased.
const (
	keyNCols     = "ncols"
	keyNRows     = "nrows"
	keyXLLCorner = "xllcorner"
	keyYLLCorner = "yllcorner"
	keyXLLCenter = "xllcenter"
	keyYLLCenter = "yllcenter"
	keyCellSize  = "cellsize"
	keyNoData    = "nodata_value"
)

// Read parses a whole grid from r.
// Complexity: O(r×c).
func Read(r io.Reader) (*grid.Grid, error) {
	return read(r, 0)
}

// ReadDownsampled parses a grid from r keeping only every stride-th row and
// column, where stride = grid.Stride(nrows, ncols, maxSide). Only the
// sampled cells are stored, so memory stays bounded by maxSide² even for
// large inputs. A grid that already fits is read whole.
// Returns ErrInvalidMaxSide for maxSide < 1.
func ReadDownsampled(r io.Reader, maxSide int) (*grid.Grid, error) {
	if maxSide < 1 {
		return nil, ErrInvalidMaxSide
	}
	return read(r, maxSide)
}

// tokens walks whitespace-separated words and remembers one pushed-back word.
type tokens struct {
	sc     *bufio.Scanner
	peeked string
	has    bool
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next() (string, bool) {
	if t.has {
		t.has = false
		return t.peeked, true
	}
	if !t.sc.Scan() {
		return "", false
	}
	return t.sc.Text(), true
}

func (t *tokens) unread(s string) { t.peeked, t.has = s, true }

func (t *tokens) err() error { return t.sc.Err() }

// readHeader consumes header entries and stops at the first data token.
func readHeader(t *tokens) (grid.Header, error) {
	h := grid.Header{NoData: grid.DefaultNoData}
	seen := map[string]float64{}
	for {
		tok, ok := t.next()
		if !ok {
			break
		}
		key := strings.ToLower(tok)
		if !isKey(key) {
			t.unread(tok)
			break
		}
		if _, dup := seen[key]; dup {
			return h, fmt.Errorf("%w: duplicate %q", ErrMalformedHeader, tok)
		}
		val, ok := t.next()
		if !ok {
			return h, fmt.Errorf("%w: %q has no value", ErrMalformedHeader, tok)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return h, fmt.Errorf("%w: %s %q", ErrMalformedHeader, tok, val)
		}
		seen[key] = v
	}
	if err := t.err(); err != nil {
		return h, err
	}

	for _, req := range []string{keyNCols, keyNRows, keyCellSize} {
		if _, ok := seen[req]; !ok {
			return h, fmt.Errorf("%w: missing %s", ErrMalformedHeader, req)
		}
	}
	nc, nr := seen[keyNCols], seen[keyNRows]
	if nc != math.Trunc(nc) || nr != math.Trunc(nr) || nc < 1 || nr < 1 {
		return h, fmt.Errorf("%w: dimensions %gx%g", ErrMalformedHeader, nr, nc)
	}
	h.NCols, h.NRows = int(nc), int(nr)
	h.CellSize = seen[keyCellSize]
	if v, ok := seen[keyNoData]; ok {
		h.NoData = v
	}

	var err error
	if h.XLLCorner, err = corner(seen, keyXLLCorner, keyXLLCenter, h.CellSize); err != nil {
		return h, err
	}
	if h.YLLCorner, err = corner(seen, keyYLLCorner, keyYLLCenter, h.CellSize); err != nil {
		return h, err
	}
	return h, nil
}

// corner resolves a lower-left coordinate from either its corner or its
// center form.
func corner(seen map[string]float64, cornerKey, centerKey string, cellSize float64) (float64, error) {
	v, hasCorner := seen[cornerKey]
	c, hasCenter := seen[centerKey]
	switch {
	case hasCorner && hasCenter:
		return 0, fmt.Errorf("%w: both %s and %s", ErrMalformedHeader, cornerKey, centerKey)
	case hasCenter:
		return c - cellSize/2, nil
	}
	return v, nil
}

func isKey(k string) bool {
	switch k {
	case keyNCols, keyNRows, keyXLLCorner, keyYLLCorner, keyXLLCenter, keyYLLCenter, keyCellSize, keyNoData:
		return true
	}
	return false
}

// read parses header and data. maxSide==0 disables sampling.
func read(r io.Reader, maxSide int) (*grid.Grid, error) {
	t := newTokens(r)
	h, err := readHeader(t)
	if err != nil {
		return nil, err
	}

	stride := 1
	if maxSide > 0 {
		stride = grid.Stride(h.NRows, h.NCols, maxSide)
	}
	out := h
	out.NRows = (h.NRows + stride - 1) / stride
	out.NCols = (h.NCols + stride - 1) / stride
	g, err := grid.New(out)
	if err != nil {
		return nil, err
	}

	for row := 0; row < h.NRows; row++ {
		for col := 0; col < h.NCols; col++ {
			tok, ok := t.next()
			if !ok {
				if err := t.err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: got %d of %d", ErrShortData, row*h.NCols+col, h.NRows*h.NCols)
			}
			if row%stride != 0 || col%stride != 0 {
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadValue, tok, row, col)
			}
			if v == h.NoData {
				g.StoreNoData(row/stride, col/stride)
				continue
			}
			g.Store(row/stride, col/stride, v)
		}
	}
	return g, nil
}
