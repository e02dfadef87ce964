package gppc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/maze"
)

// LoadMap reads a GPPC .map file: a four-line header ("type octile",
// "height H", "width W", "map") followed by H rows of W characters each.
// '.' and 'G' are passable; every other rune is a wall. The returned
// grid's size is coord.Coord{W, H} — x is dimension 0, matching the
// file's row-major (y outer, x inner) layout.
func LoadMap(r io.Reader) (*maze.Grid[bool], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimRight(sc.Text(), "\r\n"), true
	}

	typeLine, ok := line()
	if !ok || typeLine != "type octile" {
		return nil, fmt.Errorf("gppc: %w: expected %q, got %q", ErrMalformedHeader, "type octile", typeLine)
	}
	heightLine, ok := line()
	height, herr := parseHeaderField(heightLine, "height")
	if !ok || herr != nil {
		return nil, fmt.Errorf("gppc: %w: %v", ErrMalformedHeader, herr)
	}
	widthLine, ok := line()
	width, werr := parseHeaderField(widthLine, "width")
	if !ok || werr != nil {
		return nil, fmt.Errorf("gppc: %w: %v", ErrMalformedHeader, werr)
	}
	mapLine, ok := line()
	if !ok || mapLine != "map" {
		return nil, fmt.Errorf("gppc: %w: expected %q, got %q", ErrMalformedHeader, "map", mapLine)
	}

	active := make([]bool, 0, width*height)
	rows := 0
	for {
		row, ok := line()
		if !ok {
			break
		}
		if row == "" {
			continue
		}
		if len(row) != width {
			return nil, fmt.Errorf("gppc: %w: row %d has length %d, want %d", ErrRowWidth, rows, len(row), width)
		}
		for _, ch := range row {
			active = append(active, ch == '.' || ch == 'G')
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gppc: reading map: %w", err)
	}
	if rows != height {
		return nil, fmt.Errorf("gppc: %w: got %d rows, want %d", ErrRowCount, rows, height)
	}

	size := coord.Coord{uint32(width), uint32(height)}
	return maze.NewBoolGrid(size, active, false)
}

func parseHeaderField(line, name string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != name {
		return 0, fmt.Errorf("expected %q line, got %q", name, line)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}
