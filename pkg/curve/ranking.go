package curve

import (
	"cmp"
	"fmt"
	"slices"
)

// Build ranks the input and accumulates it into Counts. A nil Compare
// defaults to the natural ascending order of S.
func Build[S cmp.Ordered, L comparable](in Input[S, L]) (*Counts, error) {
	if in.Compare == nil {
		in.Compare = cmp.Compare[S]
	}
	return BuildFunc(in)
}

// BuildFunc is Build for score types without a natural order. Compare must be
// set whenever scores are supplied.
func BuildFunc[S any, L comparable](in Input[S, L]) (*Counts, error) {
	ranking, err := RankFunc(in)
	if err != nil {
		return nil, err
	}
	return ranking.Counts(*in.Positive), nil
}

// Rank returns the ranked label sequence for the input, defaulting Compare to
// the natural order of S.
func Rank[S cmp.Ordered, L comparable](in Input[S, L]) (Ranking[L], error) {
	if in.Compare == nil {
		in.Compare = cmp.Compare[S]
	}
	return RankFunc(in)
}

// RankFunc returns the ranked label sequence for the input.
//
// Ranked labels are copied through unchanged. Scores and labels are paired and
// stable-sorted by descending score, so members of a tie group keep their
// input order; consecutive equal scores form one group.
func RankFunc[S any, L comparable](in Input[S, L]) (Ranking[L], error) {
	if err := in.validate(); err != nil {
		return Ranking[L]{}, err
	}

	if in.RankedLabels != nil {
		return Ranking[L]{Labels: slices.Clone(in.RankedLabels)}, nil
	}

	type scored struct {
		score S
		label L
	}

	pairs := make([]scored, len(in.Scores))
	for i := range in.Scores {
		pairs[i] = scored{score: in.Scores[i], label: in.Labels[i]}
	}

	// descending: arguments swapped
	slices.SortStableFunc(pairs, func(a, b scored) int {
		return in.Compare(b.score, a.score)
	})

	labels := make([]L, len(pairs))
	groups := make([]int, 0, len(pairs))
	for i, p := range pairs {
		labels[i] = p.label
		if i > 0 && in.Compare(pairs[i-1].score, p.score) == 0 {
			groups[len(groups)-1]++
		} else {
			groups = append(groups, 1)
		}
	}

	return Ranking[L]{Labels: labels, groups: groups}, nil
}

func (in Input[S, L]) validate() error {
	if in.Positive == nil {
		return ErrMissingPositiveLabel
	}

	hasRanking := in.RankedLabels != nil
	hasScores := in.Scores != nil || in.Labels != nil

	switch {
	case hasRanking && hasScores:
		return ErrAmbiguousInput
	case !hasRanking && !hasScores:
		return ErrNoInput
	case hasRanking:
		return nil
	}

	if len(in.Scores) != len(in.Labels) {
		return fmt.Errorf("%w: %d scores, %d labels", ErrLengthMismatch, len(in.Scores), len(in.Labels))
	}
	if in.Compare == nil {
		return ErrMissingComparator
	}
	return nil
}
