package curve

import "math"

// Recall returns tp[r] / P.
func (c *Counts) Recall(r int) float64 {
	return float64(c.tp[r]) / float64(c.TotalPositives())
}

// Precision returns tp[r] / (tp[r] + fp[r]).
//
// Precision is 0/0 at rank 0; Precision(1) is used in its place, which
// extends the curve horizontally to the vertical axis. An empty ranking has
// no defined precision and returns NaN.
func (c *Counts) Precision(r int) float64 {
	if r == 0 {
		if len(c.tp) < 2 {
			return math.NaN()
		}
		r = 1
	}
	return float64(c.tp[r]) / float64(c.tp[r]+c.fp[r])
}

// PRPoint returns (recall, precision) at rank r.
func (c *Counts) PRPoint(r int) Point {
	return Point{X: c.Recall(r), Y: c.Precision(r)}
}

// PRPoints returns a piecewise-linear PR curve that never lies above the true
// one, in non-decreasing recall order.
//
// Between two ranks the true curve is linear only when the step adds a single
// class. A tie step adds both positives and negatives; a straight line across
// it would overestimate precision, so the lower-left corner
// (Recall(i-1), Precision(i)) is inserted before point i.
func (c *Counts) PRPoints() []Point {
	points := make([]Point, 0, len(c.tp)+c.tieSteps())
	points = append(points, c.PRPoint(0))
	for i := 1; i < len(c.tp); i++ {
		if c.isTieStep(i) {
			points = append(points, Point{X: c.Recall(i - 1), Y: c.Precision(i)})
		}
		points = append(points, c.PRPoint(i))
	}
	return points
}

// PRArea returns the area under the PRPoints curve: trapezoids over steps that
// add only positives, rectangles at Precision(i) over tie steps, nothing over
// steps that add only negatives. The result is a lower bound on the true area.
func (c *Counts) PRArea() float64 {
	var area float64
	for i := 1; i < len(c.tp); i++ {
		width := float64(c.tp[i] - c.tp[i-1])
		switch {
		case c.tp[i] == c.tp[i-1]:
		case c.fp[i] == c.fp[i-1]:
			area += width * (c.Precision(i-1) + c.Precision(i)) / 2
		default:
			area += width * c.Precision(i)
		}
	}
	return area / float64(c.TotalPositives())
}

func (c *Counts) isTieStep(i int) bool {
	return c.tp[i] > c.tp[i-1] && c.fp[i] > c.fp[i-1]
}

func (c *Counts) tieSteps() int {
	ties := 0
	for i := 1; i < len(c.tp); i++ {
		if c.isTieStep(i) {
			ties++
		}
	}
	return ties
}
