package report

import (
	"math"
	"strconv"

	"github.com/tensorplex-labs/roc/pkg/curve"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"

	// AgreementTolerance bounds the difference between the rank-based and
	// the trapezoid ROC area before a warning is logged.
	AgreementTolerance = 1e-9
)

// Number is a float64 that encodes NaN and infinities as JSON null.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Point is a curve vertex in report form.
type Point struct {
	X Number `json:"x" yaml:"x"`
	Y Number `json:"y" yaml:"y"`
}

// Report summarises a curve: class totals, areas, Mann-Whitney U and,
// optionally, the ROC, PR and hull vertices.
type Report struct {
	TotalPositives   int64  `json:"total_positives" yaml:"total_positives"`
	TotalNegatives   int64  `json:"total_negatives" yaml:"total_negatives"`
	Thresholds       int    `json:"thresholds" yaml:"thresholds"`
	ROCArea          Number `json:"roc_area" yaml:"roc_area"`
	ROCAreaTrapezoid Number `json:"roc_area_trapezoid" yaml:"roc_area_trapezoid"`
	MannWhitneyUPos  Number `json:"mann_whitney_u_pos" yaml:"mann_whitney_u_pos"`
	MannWhitneyUNeg  Number `json:"mann_whitney_u_neg" yaml:"mann_whitney_u_neg"`
	PRArea           Number `json:"pr_area" yaml:"pr_area"`
	HullROCArea      Number `json:"hull_roc_area" yaml:"hull_roc_area"`
	HullThresholds   int    `json:"hull_thresholds" yaml:"hull_thresholds"`

	ROCPoints  []Point `json:"roc_points,omitempty" yaml:"roc_points,omitempty"`
	PRPoints   []Point `json:"pr_points,omitempty" yaml:"pr_points,omitempty"`
	HullPoints []Point `json:"hull_points,omitempty" yaml:"hull_points,omitempty"`
}

func toPoints(points []curve.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: Number(p.X), Y: Number(p.Y)}
	}
	return out
}
