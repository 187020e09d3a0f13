package curve

import (
	"cmp"
	"math/bits"
	"slices"
)

// ConvexHull returns the upper convex hull of the ROC curve as a new Counts:
// the best curve reachable by randomly mixing the classifiers at two
// thresholds.
//
// Algorithm (Andrew's monotone chain, upper half):
//  1. Points (fp[i], tp[i]) arrive sorted by x, ties by ascending y.
//  2. For each point B, while the hull ends in {..., O, A} and O->A->B does
//     not turn clockwise (cross product >= 0), drop A.
//  3. Append B.
//
// Collinear points are dropped. Orientation is decided with exact 128-bit
// products, so it holds for any count size.
//
// Complexity: O(n) time, O(n) memory.
func (c *Counts) ConvexHull() *Counts {
	xs := make([]int64, 0, len(c.fp))
	ys := make([]int64, 0, len(c.tp))

	for i := range c.tp {
		bx, by := c.fp[i], c.tp[i]
		for k := len(xs); k >= 2; k = len(xs) {
			ox, oy := xs[k-2], ys[k-2]
			ax, ay := xs[k-1], ys[k-1]
			if compareProducts(ax-ox, by-oy, ay-oy, bx-ox) < 0 {
				break
			}
			xs, ys = xs[:k-1], ys[:k-1]
		}
		xs = append(xs, bx)
		ys = append(ys, by)
	}

	return &Counts{tp: slices.Clip(ys), fp: slices.Clip(xs)}
}

// compareProducts returns the sign of a*b - c*d without overflow.
func compareProducts(a, b, c, d int64) int {
	left := sign(a) * sign(b)
	right := sign(c) * sign(d)
	if left != right {
		return cmp.Compare(left, right)
	}
	if left == 0 {
		return 0
	}

	hiL, loL := bits.Mul64(magnitude(a), magnitude(b))
	hiR, loR := bits.Mul64(magnitude(c), magnitude(d))
	order := cmp.Compare(hiL, hiR)
	if order == 0 {
		order = cmp.Compare(loL, loR)
	}
	// both products negative: larger magnitude is smaller
	return order * left
}

func sign(v int64) int {
	return cmp.Compare(v, 0)
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
