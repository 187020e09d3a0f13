package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
)

func TestPrecisionAtRankZero(t *testing.T) {
	counts := FromRanking([]int{0, 1, 1}, 1)

	assert.Equal(t, 0.0, counts.Precision(1))
	assert.Equal(t, counts.Precision(1), counts.Precision(0))
	assert.Equal(t, 2.0/3.0, counts.Precision(3))
	assert.Equal(t, 1.0, counts.Recall(3))
	assert.Equal(t, 0.5, counts.Recall(2))
}

func TestPrecisionEmptyRanking(t *testing.T) {
	counts := FromRanking([]int{}, 1)

	assert.True(t, math.IsNaN(counts.Precision(0)))
}

func TestPRPointsWithoutTies(t *testing.T) {
	counts := FromRanking([]int{1, 0, 1}, 1)

	assert.Equal(t, []Point{
		{X: 0, Y: 1},
		{X: 0.5, Y: 1},
		{X: 0.5, Y: 0.5},
		{X: 1, Y: 2.0 / 3.0},
	}, counts.PRPoints())
}

func TestPRPointsInjectsLowerLeftCorner(t *testing.T) {
	counts, err := NewCounts([]int64{0, 3, 4, 5}, []int64{0, 1, 2, 3})
	require.NoError(t, err)

	points := counts.PRPoints()

	// every step is a tie step
	require.Len(t, points, 4+3)
	assert.Equal(t, Point{X: 0, Y: 0.75}, points[0])
	assert.Equal(t, Point{X: 0, Y: 0.75}, points[1])
	assert.Equal(t, Point{X: 0.6, Y: 0.75}, points[2])
	assert.Equal(t, Point{X: 0.6, Y: 4.0 / 6.0}, points[3])
	assert.Equal(t, Point{X: 0.8, Y: 4.0 / 6.0}, points[4])
	assert.Equal(t, Point{X: 0.8, Y: 0.625}, points[5])
	assert.Equal(t, Point{X: 1, Y: 0.625}, points[6])
}

func TestPRArea(t *testing.T) {
	tests := []struct {
		name string
		tp   []int64
		fp   []int64
		want float64
	}{
		{name: "perfect", tp: []int64{0, 1, 2, 2, 2}, fp: []int64{0, 0, 0, 1, 2}, want: 1},
		{name: "interleaved", tp: []int64{0, 1, 1, 2, 3, 3, 3, 4, 4, 4, 5}, fp: []int64{0, 0, 1, 1, 1, 2, 3, 3, 4, 5, 5}, want: 1663.0 / 2520.0},
		{name: "tied groups", tp: []int64{0, 3, 4, 5}, fp: []int64{0, 1, 2, 3}, want: 17.0 / 24.0},
		{name: "single mixed group", tp: []int64{0, 1}, fp: []int64{0, 1}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, err := NewCounts(tt.tp, tt.fp)
			require.NoError(t, err)

			assert.InDelta(t, tt.want, counts.PRArea(), 1e-12)
		})
	}
}

// A tie group of a positives and b negatives has a true PR curve that is
// concave between its endpoints; the rectangle must not exceed it.
func TestPRAreaIsLowerBoundOnTieStep(t *testing.T) {
	counts, err := NewCounts([]int64{0, 1, 5}, []int64{0, 0, 4})
	require.NoError(t, err)

	// Precision along the tie group interpolates tp and fp jointly:
	// p(k) = (1+k) / (1+2k) for k positives taken of 4, integrated over recall.
	exact := 0.0
	const samples = 100000
	for s := range samples {
		k := 4 * (float64(s) + 0.5) / samples
		exact += (1 + k) / (1 + 2*k)
	}
	exact = (1.0 + exact*4/samples) / 5

	assert.LessOrEqual(t, counts.PRArea(), exact)
}

func TestPRAreaMatchesTrapezoidOfPoints(t *testing.T) {
	counts, err := Build(Input[float64, int]{
		Scores:   []float64{3, 1, 1, 2, 3, 3, 2, 3},
		Labels:   []int{0, 1, 0, 1, 1, 1, 0, 1},
		Positive: Positive(1),
	})
	require.NoError(t, err)

	points := counts.PRPoints()
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	assert.InDelta(t, integrate.Trapezoidal(xs, ys), counts.PRArea(), 1e-12)
}
