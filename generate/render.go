package generate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/maze"
)

// Render draws g as ASCII: '.' for an active cell, '#' for inactive,
// with 'S'/'E' marking start/end (pass -1 for either to omit it). Only
// 1-D and 2-D grids up to 100 cells per side are supported — anything
// larger or higher-dimensional returns an error, since an ASCII dump
// stops being a useful debugging aid past that (§6's console-rendering
// mention, scoped down from arbitrary K to what a terminal can show).
func Render(g *maze.Grid[bool], start, end int64) (string, error) {
	size := g.Size()
	if size.K() < 1 || size.K() > 2 {
		return "", fmt.Errorf("generate: Render supports 1-D or 2-D grids only, got K=%d", size.K())
	}
	for _, dim := range size {
		if dim > 100 {
			return "", fmt.Errorf("generate: Render supports grids up to 100 cells per side, got %d", dim)
		}
	}

	var b strings.Builder
	if size.K() == 1 {
		for x := uint32(0); x < size[0]; x++ {
			idx, err := coord.To1D(coord.Coord{x}, size)
			if err != nil {
				return "", fmt.Errorf("generate: Render: %w", err)
			}
			b.WriteByte(cellGlyph(g, int64(idx), start, end))
		}
		b.WriteByte('\n')
		return b.String(), nil
	}

	for y := uint32(0); y < size[1]; y++ {
		for x := uint32(0); x < size[0]; x++ {
			idx, err := coord.To1D(coord.Coord{x, y}, size)
			if err != nil {
				return "", fmt.Errorf("generate: Render: %w", err)
			}
			b.WriteByte(cellGlyph(g, int64(idx), start, end))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func cellGlyph(g *maze.Grid[bool], v, start, end int64) byte {
	switch {
	case v == start:
		return 'S'
	case v == end:
		return 'E'
	case g.IsActive(v):
		return '.'
	default:
		return '#'
	}
}
