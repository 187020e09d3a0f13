// Package report turns curve counts into a summary report and encodes it as
// YAML, JSON or plain text.
package report

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate"

	"github.com/tensorplex-labs/roc/pkg/curve"
)

// Build computes the report for counts. Point lists are included only when
// includePoints is set.
func Build(counts *curve.Counts, includePoints bool) Report {
	hull := counts.ConvexHull()
	uPos, uNeg := counts.MannWhitneyU()
	rocPoints := counts.ROCPoints()

	r := Report{
		TotalPositives:   counts.TotalPositives(),
		TotalNegatives:   counts.TotalNegatives(),
		Thresholds:       counts.Len(),
		ROCArea:          Number(counts.ROCArea()),
		ROCAreaTrapezoid: Number(TrapezoidArea(rocPoints)),
		MannWhitneyUPos:  Number(uPos),
		MannWhitneyUNeg:  Number(uNeg),
		PRArea:           Number(counts.PRArea()),
		HullROCArea:      Number(hull.ROCArea()),
		HullThresholds:   hull.Len(),
	}

	if !AreasAgree(float64(r.ROCArea), float64(r.ROCAreaTrapezoid)) {
		log.Warn().
			Float64("roc_area", float64(r.ROCArea)).
			Float64("roc_area_trapezoid", float64(r.ROCAreaTrapezoid)).
			Msg("Rank-based and trapezoid ROC areas disagree")
	}

	if includePoints {
		r.ROCPoints = toPoints(rocPoints)
		r.PRPoints = toPoints(counts.PRPoints())
		r.HullPoints = toPoints(hull.ROCPoints())
	}
	return r
}

// TrapezoidArea integrates a piecewise-linear curve given in ascending x
// order. It is NaN for fewer than two points or undefined coordinates.
func TrapezoidArea(points []curve.Point) float64 {
	if len(points) < 2 {
		return math.NaN()
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return math.NaN()
		}
		xs[i], ys[i] = p.X, p.Y
	}
	return integrate.Trapezoidal(xs, ys)
}

// AreasAgree reports whether two areas match within AgreementTolerance. Two
// NaN areas agree: both describe the same degenerate input.
func AreasAgree(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return scalar.EqualWithinAbsOrRel(a, b, AgreementTolerance, AgreementTolerance)
}
