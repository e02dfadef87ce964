package solver

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/pool"
)

// Query is implemented by every algorithm kernel's Params type, letting
// the façade validate and shortcut a search without knowing anything
// else about the kernel.
type Query interface {
	Bounds() (m maze.Maze, start, end int64)
}

// Run is the generic entry point every kernel's exported Solve-shaped
// function calls through: it validates start/end, shortcuts start==end,
// dispatches to invoke, and — unless noCleanup is set — resets every
// resetter afterward regardless of whether invoke succeeded, joining any
// reset errors with errors.Join and preferring invoke's error as the
// primary cause when both fail.
func Run[Q Query](q Q, invoke func(Q) (Path, error), resetters []pool.Resetter, noCleanup bool) (Path, error) {
	m, start, end := q.Bounds()
	if m == nil {
		return nil, ErrMazeNil
	}
	if !m.Contains(start) || !m.Contains(end) || !m.IsActive(start) || !m.IsActive(end) {
		return nil, nil
	}
	if start == end {
		return Path{end}, nil
	}

	path, err := invoke(q)
	if !noCleanup {
		if tErr := Teardown(resetters...); tErr != nil {
			if err != nil {
				err = errors.Join(err, tErr)
			} else {
				err = tErr
			}
		}
	}
	return path, err
}

// Teardown calls Reset on every resetter regardless of earlier failures,
// joining every error it sees — the façade's "capture every pool-reset
// exception, rethrow after all three attempts" contract.
func Teardown(resetters ...pool.Resetter) error {
	var errs []error
	for _, r := range resetters {
		if r == nil {
			continue
		}
		if err := r.Reset(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EstimateCapacity sizes a closed-set reservation hint: for a Graph,
// max(count/10, 1); for a Grid (recognised via maze.GridLike without a
// type switch over every possible cell type), max(start, end) — both per
// the façade's capacity-estimation rule.
func EstimateCapacity(m maze.Maze, start, end int64) int {
	if _, ok := m.(maze.GridLike); ok {
		hi := start
		if end > hi {
			hi = end
		}
		if hi < 1 {
			hi = 1
		}
		return int(hi)
	}
	if c := m.Count() / 10; c > 0 {
		return int(c)
	}
	return 1
}

// Logger returns l if non-nil, else slog.Default() — every kernel takes
// an optional *slog.Logger and falls back to this so diagnostics never
// hit a nil-pointer call.
func Logger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
