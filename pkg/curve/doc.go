// Package curve computes ROC and precision-recall statistics for a binary
// classifier from its ranking of labelled examples.
//
// A ranking is reduced to a pair of cumulative count arrays (Counts): after
// each threshold group, how many positives and how many negatives have been
// ranked so far. Everything else is derived from those two arrays:
//
//   - confusion matrices at every threshold
//   - ROC points, the ROC area and the Mann-Whitney U statistic
//   - PR points (with a lower-bound correction for tied groups) and the PR area
//   - the convex hull of the ROC curve, itself returned as a Counts
//
// Usage:
//
//	counts, err := curve.Build(curve.Input[float64, int]{
//		Scores:   []float64{0.9, 0.8, 0.8, 0.1},
//		Labels:   []int{1, 0, 1, 0},
//		Positive: curve.Positive(1),
//	})
//	if err != nil {
//		return err
//	}
//	auc := counts.ROCArea()
//
// Examples with equal scores are collapsed into a single count step, so
// metrics depend only on tie groups and never on the order of members within
// a group.
//
// Degenerate input (only positives or only negatives) produces NaN rates and
// areas rather than errors; callers must check with math.IsNaN.
//
// A Counts is immutable once built and may be shared between goroutines.
package curve
