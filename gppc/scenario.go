package gppc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scenario is one row of a .map.scen file: a start/goal pair over a
// named map, with the optimal path length GPPC precomputed for it.
// MapName, MapWidth, and MapHeight are only populated by v1 rows — v0
// rows leave them at their zero value, since the legacy layout omits
// them.
type Scenario struct {
	Bucket        int
	MapName       string
	MapWidth      int
	MapHeight     int
	StartX        int64
	StartY        int64
	GoalX         int64
	GoalY         int64
	OptimalLength float64
}

// LoadScenarios reads a .map.scen file: an optional "version <f>" header
// line, then one row per scenario. A v0 row is "bucket bucket x0 y0 x1
// y1 dist" (7 fields); a v1 row is "bucket map mw mh x0 y0 x1 y1 dist"
// (9 fields) — the row layout is detected per-line by field count, so a
// version header is accepted but not required to pick the right parse.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var out []Scenario
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "version") {
			continue
		}
		fields := strings.Fields(line)
		row, err := parseScenarioRow(fields)
		if err != nil {
			return nil, fmt.Errorf("gppc: line %d: %w", lineNo, err)
		}
		out = append(out, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gppc: reading scenarios: %w", err)
	}
	return out, nil
}

func parseScenarioRow(fields []string) (Scenario, error) {
	switch len(fields) {
	case 7:
		bucket, err := strconv.Atoi(fields[0])
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: bucket: %v", ErrScenarioRow, err)
		}
		x0, y0, x1, y1, dist, err := parseCoordsAndDist(fields[2], fields[3], fields[4], fields[5], fields[6])
		if err != nil {
			return Scenario{}, err
		}
		return Scenario{Bucket: bucket, StartX: x0, StartY: y0, GoalX: x1, GoalY: y1, OptimalLength: dist}, nil
	case 9:
		bucket, err := strconv.Atoi(fields[0])
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: bucket: %v", ErrScenarioRow, err)
		}
		mw, err := strconv.Atoi(fields[2])
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: map width: %v", ErrScenarioRow, err)
		}
		mh, err := strconv.Atoi(fields[3])
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: map height: %v", ErrScenarioRow, err)
		}
		x0, y0, x1, y1, dist, err := parseCoordsAndDist(fields[4], fields[5], fields[6], fields[7], fields[8])
		if err != nil {
			return Scenario{}, err
		}
		return Scenario{
			Bucket: bucket, MapName: fields[1], MapWidth: mw, MapHeight: mh,
			StartX: x0, StartY: y0, GoalX: x1, GoalY: y1, OptimalLength: dist,
		}, nil
	default:
		return Scenario{}, fmt.Errorf("%w: got %d fields", ErrScenarioRow, len(fields))
	}
}

func parseCoordsAndDist(x0s, y0s, x1s, y1s, dists string) (x0, y0, x1, y1 int64, dist float64, err error) {
	if x0, err = strconv.ParseInt(x0s, 10, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: x0: %v", ErrScenarioRow, err)
	}
	if y0, err = strconv.ParseInt(y0s, 10, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: y0: %v", ErrScenarioRow, err)
	}
	if x1, err = strconv.ParseInt(x1s, 10, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: x1: %v", ErrScenarioRow, err)
	}
	if y1, err = strconv.ParseInt(y1s, 10, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: y1: %v", ErrScenarioRow, err)
	}
	if dist, err = strconv.ParseFloat(dists, 64); err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: dist: %v", ErrScenarioRow, err)
	}
	return x0, y0, x1, y1, dist, nil
}
