package heuristic

import (
	"math"

	"github.com/katalvlaran/pathmaze/coord"
)

// Func is the common shape every heuristic in this package satisfies, and
// the shape JPS takes directly; the other kernels take the vertex-indexed
// solver.Heuristic instead.
type Func func(a, b coord.Coord) float64

// delta returns the signed per-component difference a[i] - b[i] as
// float64 over a's arity, panicking (via an explicit index access) if b is
// shorter than a — a programmer error, not a runtime condition callers
// recover from. Extra trailing components of b are ignored.
func delta(a, b coord.Coord) []float64 {
	d := make([]float64, len(a))
	for i := range a {
		d[i] = float64(a[i]) - float64(b[i])
	}
	return d
}

// Manhattan is the L1 (taxicab) distance: Σ|a_i - b_i|.
func Manhattan(a, b coord.Coord) float64 {
	var sum float64
	for _, v := range delta(a, b) {
		sum += math.Abs(v)
	}
	return sum
}

// SqrEuclidean is the squared L2 distance: Σ(a_i - b_i)^2. Cheaper than
// Euclidean when only relative ordering matters (it preserves ordering of
// non-negative distances but not admissibility against true edge costs).
func SqrEuclidean(a, b coord.Coord) float64 {
	var sum float64
	for _, v := range delta(a, b) {
		sum += v * v
	}
	return sum
}

// Euclidean is the straight-line L2 distance.
func Euclidean(a, b coord.Coord) float64 {
	return math.Sqrt(SqrEuclidean(a, b))
}

// Chebyshev is the L∞ (chessboard) distance: max_i|a_i - b_i|.
func Chebyshev(a, b coord.Coord) float64 {
	var m float64
	for _, v := range delta(a, b) {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// Octile is the standard 2-D diagonal-move distance: for dx,dy the
// absolute per-axis deltas, Octile = max(dx,dy) + (√2-1)*min(dx,dy). It
// generalises here to K dimensions as the sum, over all but the largest
// component, of (√2-1)*component, plus the largest component — the cost
// of taking every available diagonal step before finishing axis-aligned.
// JPS (2-D only) is the canonical consumer.
func Octile(a, b coord.Coord) float64 {
	d := delta(a, b)
	for i := range d {
		d[i] = math.Abs(d[i])
	}
	if len(d) == 0 {
		return 0
	}
	max := d[0]
	var sum float64
	for _, v := range d {
		sum += v
		if v > max {
			max = v
		}
	}
	const sqrt2Minus1 = math.Sqrt2 - 1
	return max + sqrt2Minus1*(sum-max)
}

// Canberra is a weighted L1 variant sensitive to relative rather than
// absolute differences: Σ |a_i-b_i| / (|a_i|+|b_i|), terms with a zero
// denominator contribute 0 rather than NaN.
func Canberra(a, b coord.Coord) float64 {
	var sum float64
	for i := range a {
		num := math.Abs(float64(a[i]) - float64(b[i]))
		den := math.Abs(float64(a[i])) + math.Abs(float64(b[i]))
		if den == 0 {
			continue
		}
		sum += num / den
	}
	return sum
}

// Cosine returns the cosine *distance* (1 - cosine similarity) between a
// and b treated as vectors from the origin. Coordinates are unsigned grid
// indices, so this is most meaningful when a and b are offsets rather than
// absolute positions; it is provided because the source exposes it as one
// of the seven named heuristics, not because it is admissible for grid
// search.
func Cosine(a, b coord.Coord) float64 {
	var dot, na, nb float64
	for i := range a {
		fa, fb := float64(a[i]), float64(b[i])
		dot += fa * fb
		na += fa * fa
		nb += fb * fb
	}
	if na == 0 || nb == 0 {
		return 1
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return 1 - sim
}
