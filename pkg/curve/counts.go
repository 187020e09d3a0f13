package curve

import (
	"fmt"
	"slices"
)

// FromRanking builds Counts from a ranked label sequence in which every label
// is its own threshold group.
func FromRanking[L comparable](ranked []L, positive L) *Counts {
	return Ranking[L]{Labels: ranked}.Counts(positive)
}

// NewRanking pairs ranked labels with tie group sizes. A nil groups slice
// makes every label its own group.
func NewRanking[L comparable](labels []L, groups []int) (Ranking[L], error) {
	if groups == nil {
		return Ranking[L]{Labels: slices.Clone(labels)}, nil
	}
	total := 0
	for i, size := range groups {
		if size <= 0 {
			return Ranking[L]{}, fmt.Errorf("%w: group %d has size %d", ErrRankingGroups, i, size)
		}
		total += size
	}
	if total != len(labels) {
		return Ranking[L]{}, fmt.Errorf("%w: groups cover %d labels, have %d", ErrRankingGroups, total, len(labels))
	}
	return Ranking[L]{Labels: slices.Clone(labels), groups: slices.Clone(groups)}, nil
}

// Groups returns the tie group sizes, or nil when every label is its own group.
func (r Ranking[L]) Groups() []int {
	return slices.Clone(r.groups)
}

// Counts accumulates the ranking into count arrays in a single forward pass.
func (r Ranking[L]) Counts(positive L) *Counts {
	steps := len(r.Labels)
	if r.groups != nil {
		steps = len(r.groups)
	}

	tp := make([]int64, steps+1)
	fp := make([]int64, steps+1)

	var pos, neg int64
	next := 0
	for g := range steps {
		size := 1
		if r.groups != nil {
			size = r.groups[g]
		}
		for _, label := range r.Labels[next : next+size] {
			if label == positive {
				pos++
			} else {
				neg++
			}
		}
		next += size
		tp[g+1] = pos
		fp[g+1] = neg
	}

	return &Counts{tp: tp, fp: fp}
}

// NewCounts builds Counts directly from true positive and false positive
// count arrays. The arrays are copied. Monotonicity is not checked; use
// Validate when the source is untrusted.
func NewCounts(truePositives, falsePositives []int64) (*Counts, error) {
	if len(truePositives) == 0 || len(truePositives) != len(falsePositives) {
		return nil, fmt.Errorf("%w: got %d and %d", ErrCountsLength, len(truePositives), len(falsePositives))
	}
	return &Counts{
		tp: slices.Clone(truePositives),
		fp: slices.Clone(falsePositives),
	}, nil
}

// Validate reports whether the count arrays satisfy the curve invariants.
func (c *Counts) Validate() error {
	if len(c.tp) == 0 || len(c.tp) != len(c.fp) {
		return fmt.Errorf("%w: got %d and %d", ErrCountsLength, len(c.tp), len(c.fp))
	}
	if c.tp[0] != 0 || c.fp[0] != 0 {
		return fmt.Errorf("%w: counts at rank 0 are (%d, %d)", ErrCountsInvariant, c.tp[0], c.fp[0])
	}
	for i := 1; i < len(c.tp); i++ {
		if c.tp[i] < c.tp[i-1] || c.fp[i] < c.fp[i-1] {
			return fmt.Errorf("%w: counts decrease at rank %d", ErrCountsInvariant, i)
		}
	}
	return nil
}

// Len returns the number of threshold groups n. Valid ranks are 0..n.
func (c *Counts) Len() int {
	return len(c.tp) - 1
}

// TotalPositives returns the number of positive examples.
func (c *Counts) TotalPositives() int64 {
	return c.tp[len(c.tp)-1]
}

// TotalNegatives returns the number of negative examples.
func (c *Counts) TotalNegatives() int64 {
	return c.fp[len(c.fp)-1]
}

// TruePositiveCounts returns a copy of the cumulative positive counts.
func (c *Counts) TruePositiveCounts() []int64 {
	return slices.Clone(c.tp)
}

// FalsePositiveCounts returns a copy of the cumulative negative counts.
func (c *Counts) FalsePositiveCounts() []int64 {
	return slices.Clone(c.fp)
}
