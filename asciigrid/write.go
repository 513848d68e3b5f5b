// SPDX-License-Identifier: MIT

package asciigrid

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/viewshed/grid"
)

// Write serializes g to w in ESRI ASCII format.
// A data cell equal to the NODATA sentinel is written as the sentinel and
// reads back as nodata; every other cell round-trips exactly.
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	h := g.Header()
	bw := bufio.NewWriter(w)
	var buf []byte
	line := func(key string, v []byte) {
		buf = append(buf[:0], key...)
		buf = append(buf, ' ')
		buf = append(buf, v...)
		buf = append(buf, '\n')
		_, _ = bw.Write(buf)
	}
	num := func(v float64) []byte { return strconv.AppendFloat(nil, v, 'g', -1, 64) }

	line("ncols", strconv.AppendInt(nil, int64(h.NCols), 10))
	line("nrows", strconv.AppendInt(nil, int64(h.NRows), 10))
	line("xllcorner", num(h.XLLCorner))
	line("yllcorner", num(h.YLLCorner))
	line("cellsize", num(h.CellSize))
	line("NODATA_value", num(h.NoData))

	for r := 0; r < h.NRows; r++ {
		buf = buf[:0]
		for c := 0; c < h.NCols; c++ {
			if c > 0 {
				buf = append(buf, ' ')
			}
			v := h.NoData
			if g.Valid(r, c) {
				v = g.Value(r, c)
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
