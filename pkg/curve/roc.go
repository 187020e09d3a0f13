package curve

// ConfusionMatrix returns the outcome counts when the first r groups are
// classified positive. r must be in [0, Len()].
func (c *Counts) ConfusionMatrix(r int) ConfusionMatrix {
	return ConfusionMatrix{
		TruePositives:  c.tp[r],
		FalsePositives: c.fp[r],
		FalseNegatives: c.TotalPositives() - c.tp[r],
		TrueNegatives:  c.TotalNegatives() - c.fp[r],
	}
}

// ROCPoint returns (false positive rate, true positive rate) at rank r.
// A coordinate is NaN when its class is absent.
func (c *Counts) ROCPoint(r int) Point {
	return Point{
		X: float64(c.fp[r]) / float64(c.TotalNegatives()),
		Y: float64(c.tp[r]) / float64(c.TotalPositives()),
	}
}

// ROCPoints returns ROCPoint(0..n) in ascending FPR order. Connecting
// consecutive points with straight lines reproduces the exact ROC curve,
// including the diagonal segments of tie groups.
func (c *Counts) ROCPoints() []Point {
	points := make([]Point, len(c.tp))
	for r := range points {
		points[r] = c.ROCPoint(r)
	}
	return points
}

// ROCArea returns the area under the ROC curve, uNeg / (P * N). It is NaN for
// single-class input.
func (c *Counts) ROCArea() float64 {
	_, uNeg := c.MannWhitneyU()
	return uNeg / (float64(c.TotalPositives()) * float64(c.TotalNegatives()))
}

// MannWhitneyU returns the U statistics of the positive and negative samples
// with tie-averaged ranks. Rank 1 is the most believed positive, so uNeg
// counts the (positive, negative) pairs ordered correctly, with ties worth
// one half. uPos + uNeg == P * N.
//
// Every member of a group spanning raw ranks [lo, hi] receives (lo + hi) / 2.
// All arithmetic is float64 so that large samples cannot overflow.
func (c *Counts) MannWhitneyU() (uPos, uNeg float64) {
	var sumPosRanks, sumNegRanks float64
	for i := 1; i < len(c.tp); i++ {
		posCount := float64(c.tp[i] - c.tp[i-1])
		negCount := float64(c.fp[i] - c.fp[i-1])
		maxRawRank := float64(c.tp[i] + c.fp[i])
		minRawRank := maxRawRank - posCount - negCount + 1
		meanRank := (minRawRank + maxRawRank) / 2

		sumPosRanks += meanRank * posCount
		sumNegRanks += meanRank * negCount
	}

	positives := float64(c.TotalPositives())
	negatives := float64(c.TotalNegatives())
	uPos = sumPosRanks - positives*(positives+1)/2
	uNeg = sumNegRanks - negatives*(negatives+1)/2
	return uPos, uNeg
}
