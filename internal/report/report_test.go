package report

import (
	"bytes"
	"math"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tensorplex-labs/roc/pkg/curve"
)

func interleavedCounts() *curve.Counts {
	return curve.FromRanking([]int{1, 0, 1, 1, 0, 0, 1, 0, 0, 1}, 1)
}

func TestBuild(t *testing.T) {
	r := Build(interleavedCounts(), false)

	assert.Equal(t, int64(5), r.TotalPositives)
	assert.Equal(t, int64(5), r.TotalNegatives)
	assert.Equal(t, 10, r.Thresholds)
	assert.Equal(t, Number(0.6), r.ROCArea)
	assert.InDelta(t, 0.6, float64(r.ROCAreaTrapezoid), 1e-12)
	assert.Equal(t, Number(10), r.MannWhitneyUPos)
	assert.Equal(t, Number(15), r.MannWhitneyUNeg)
	assert.InDelta(t, 1663.0/2520.0, float64(r.PRArea), 1e-12)
	assert.GreaterOrEqual(t, float64(r.HullROCArea), float64(r.ROCArea))
	assert.Equal(t, 3, r.HullThresholds)
	assert.Nil(t, r.ROCPoints)
}

func TestBuildWithPoints(t *testing.T) {
	r := Build(interleavedCounts(), true)

	assert.Len(t, r.ROCPoints, 11)
	assert.Len(t, r.PRPoints, 11)
	assert.Len(t, r.HullPoints, 4)
	assert.Equal(t, Point{X: 1, Y: 1}, r.ROCPoints[10])
}

func TestBuildSingleClass(t *testing.T) {
	r := Build(curve.FromRanking([]int{1, 1}, 1), true)

	assert.True(t, math.IsNaN(float64(r.ROCArea)))
	assert.True(t, math.IsNaN(float64(r.ROCAreaTrapezoid)))
	assert.Equal(t, int64(0), r.TotalNegatives)
}

func TestAreasAgree(t *testing.T) {
	assert.True(t, AreasAgree(0.5, 0.5+1e-12))
	assert.False(t, AreasAgree(0.5, 0.51))
	assert.True(t, AreasAgree(1e6, 1e6*(1+1e-10)))
	assert.True(t, AreasAgree(0, 1e-10))
	assert.True(t, AreasAgree(math.NaN(), math.NaN()))
	assert.False(t, AreasAgree(math.NaN(), 0.5))
}

func TestTrapezoidArea(t *testing.T) {
	assert.Equal(t, 0.5, TrapezoidArea([]curve.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	assert.True(t, math.IsNaN(TrapezoidArea([]curve.Point{{X: 0, Y: 0}})))
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(curve.FromRanking([]int{1, 1}, 1), false), FormatJSON))

	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Nil(t, decoded["roc_area"])
	assert.Equal(t, float64(2), decoded["total_positives"])
	assert.NotContains(t, decoded, "roc_points")
}

func TestNumberRoundTrip(t *testing.T) {
	r := Build(interleavedCounts(), true)
	data, err := sonic.Marshal(r)
	require.NoError(t, err)

	var back Report
	require.NoError(t, sonic.Unmarshal(data, &back))
	assert.Equal(t, r.ROCArea, back.ROCArea)
	assert.Equal(t, r.PRPoints, back.PRPoints)

	var n Number
	require.NoError(t, n.UnmarshalJSON([]byte("null")))
	assert.True(t, math.IsNaN(float64(n)))
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(interleavedCounts(), true), FormatYAML))

	var decoded struct {
		ROCArea   float64 `yaml:"roc_area"`
		ROCPoints []struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		} `yaml:"roc_points"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 0.6, decoded.ROCArea)
	assert.Len(t, decoded.ROCPoints, 11)
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build(interleavedCounts(), true), FormatText))

	out := buf.String()
	assert.Contains(t, out, "ROC area")
	assert.Contains(t, out, "0.6")
	assert.Contains(t, out, "PR points (recall, precision)")
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, Report{}, Format("xml")))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"yaml":  FormatYAML,
		"YML":   FormatYAML,
		"json":  FormatJSON,
		" text": FormatText,
		"plain": FormatText,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestPipeline(t *testing.T) {
	p := NewPipeline(WithPoints(true), WithFormat(FormatJSON))
	assert.True(t, p.IncludePoints)
	assert.Equal(t, FormatJSON, p.Format)

	r := p.Process(interleavedCounts())
	assert.NotEmpty(t, r.ROCPoints)

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, r))
	assert.True(t, sonic.Valid(buf.Bytes()))

	assert.Equal(t, FormatYAML, NewPipeline().Format)
}
