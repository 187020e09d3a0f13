package curve

// Counts is the cumulative confusion-matrix representation of a ranking.
//
// For a ranking with n threshold groups both arrays have n+1 entries:
// index 0 is (0, 0) and index i holds the number of positives (tp) and
// negatives (fp) ranked within the first i groups. Both arrays are
// non-decreasing and end at the class totals.
type Counts struct {
	tp []int64
	fp []int64
}

// ConfusionMatrix holds the four outcome counts at one threshold.
type ConfusionMatrix struct {
	TruePositives  int64 `json:"true_positives" yaml:"true_positives"`
	FalsePositives int64 `json:"false_positives" yaml:"false_positives"`
	FalseNegatives int64 `json:"false_negatives" yaml:"false_negatives"`
	TrueNegatives  int64 `json:"true_negatives" yaml:"true_negatives"`
}

// Point is a curve vertex: (FPR, TPR) for ROC, (recall, precision) for PR.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Input configures how a ranking is obtained. Exactly one of RankedLabels or
// the Scores/Labels pair must be set.
type Input[S any, L comparable] struct {
	// RankedLabels is an already ranked label sequence, most believed
	// positive first. Every label forms its own threshold group.
	RankedLabels []L
	// Scores and Labels are parallel sequences; higher scores rank first.
	Scores []S
	Labels []L
	// Positive is the label value counted as positive. Required.
	Positive *L
	// Compare defines ascending score order. Build defaults it to the
	// natural order of S.
	Compare func(a, b S) int
}

// Ranking is a ranked label sequence together with its tie structure. Build
// one with Rank, RankFunc or NewRanking.
type Ranking[L comparable] struct {
	// Labels in rank order, most believed positive first.
	Labels []L
	// groups holds the size of each consecutive tie group. Nil means every
	// label is a group of its own. Sizes are positive and sum to len(Labels).
	groups []int
}

// Positive returns a pointer to label, for use as Input.Positive.
func Positive[L any](label L) *L {
	return &label
}
