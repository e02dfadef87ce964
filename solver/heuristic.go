package solver

// Heuristic estimates the remaining cost from v to a query's end. Grid
// callers typically close over a heuristic.Func and the grid's
// coord.ToND; Graph callers may pass nil, which every heuristic-search
// kernel treats as "always zero" — degrading to Dijkstra's ordering
// (still correct, just uninformed). Shared by astarfam, graveyard,
// iterdeep, and bounded so one Heuristic value can be threaded through
// whichever kernel a caller picks.
type Heuristic func(v int64) float64

// ZeroHeuristic is the admissible-but-uninformed default every
// heuristic-search kernel falls back to when no heuristic is supplied.
func ZeroHeuristic(int64) float64 { return 0 }
