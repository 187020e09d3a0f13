package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/roc/internal/config"
	"github.com/tensorplex-labs/roc/internal/report"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "test",
		Report:      config.ReportEnvConfig{PositiveLabel: "1", Format: "yaml"},
		Client:      config.ClientEnvConfig{Timeout: time.Second},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func decodeJSON(t *testing.T, buf *bytes.Buffer) report.Report {
	t.Helper()
	var rep report.Report
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &rep))
	return rep
}

func TestRunEvalScores(t *testing.T) {
	path := writeFile(t, "scores.csv", "score,label\n0.9,1\n0.8,0\n0.7,1\n0.6,0\n")

	var buf bytes.Buffer
	err := runEval(context.Background(), evalOptions{
		scoresPath: path,
		scoreCol:   0,
		labelCol:   1,
		header:     true,
		format:     "json",
	}, testConfig(), &buf)
	require.NoError(t, err)

	rep := decodeJSON(t, &buf)
	assert.Equal(t, int64(2), rep.TotalPositives)
	assert.InDelta(t, 0.75, float64(rep.ROCArea), 1e-12)
}

func TestRunEvalRanked(t *testing.T) {
	path := writeFile(t, "ranked.tsv", "pos\npos\nneg\n")

	var buf bytes.Buffer
	err := runEval(context.Background(), evalOptions{
		scoresPath: path,
		ranked:     true,
		labelCol:   0,
		positive:   "pos",
		delimiter:  `\t`,
		format:     "json",
	}, testConfig(), &buf)
	require.NoError(t, err)

	rep := decodeJSON(t, &buf)
	assert.InDelta(t, 1.0, float64(rep.ROCArea), 1e-12)
}

func TestRunEvalJoin(t *testing.T) {
	scores := writeFile(t, "scores.csv", "b,0.2\na,0.9\nc,0.5\n")
	labels := writeFile(t, "labels.csv", "c,1\na,1\nb,0\nd,0\n")

	var buf bytes.Buffer
	err := runEval(context.Background(), evalOptions{
		scoresPath:   scores,
		labelsPath:   labels,
		scoreKeyCols: []int{0},
		labelKeyCols: []int{0},
		scoreCol:     1,
		labelCol:     1,
		format:       "json",
		points:       true,
	}, testConfig(), &buf)
	require.NoError(t, err)

	rep := decodeJSON(t, &buf)
	assert.Equal(t, int64(2), rep.TotalPositives)
	assert.Equal(t, int64(1), rep.TotalNegatives)
	assert.InDelta(t, 1.0, float64(rep.ROCArea), 1e-12)
	assert.Len(t, rep.ROCPoints, 4)
}

func TestRunEvalErrors(t *testing.T) {
	path := writeFile(t, "scores.csv", "0.9,1\n")

	tests := []struct {
		name string
		opts evalOptions
	}{
		{name: "unknown format", opts: evalOptions{scoresPath: path, labelCol: 1, format: "xml"}},
		{name: "bad delimiter", opts: evalOptions{scoresPath: path, labelCol: 1, delimiter: ";;"}},
		{name: "missing file", opts: evalOptions{scoresPath: filepath.Join(t.TempDir(), "nope.csv"), labelCol: 1}},
		{name: "column out of range", opts: evalOptions{scoresPath: path, labelCol: 5}},
		{name: "labels with ranked", opts: evalOptions{scoresPath: path, labelsPath: path, ranked: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Error(t, runEval(context.Background(), tt.opts, testConfig(), &buf))
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{in: "", want: ','},
		{in: ";", want: ';'},
		{in: `\t`, want: '\t'},
		{in: "tab", want: '\t'},
		{in: "|", want: '|'},
	}
	for _, tt := range tests {
		got, err := parseDelimiter(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseDelimiter("ab")
	assert.Error(t, err)
}
