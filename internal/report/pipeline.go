package report

import (
	"io"

	"github.com/tensorplex-labs/roc/internal/utils/logger"
	"github.com/tensorplex-labs/roc/pkg/curve"
)

type Pipeline struct {
	IncludePoints bool
	Format        Format
}

type PipelineOption func(*Pipeline)

func WithPoints(include bool) PipelineOption {
	return func(p *Pipeline) {
		p.IncludePoints = include
	}
}

func WithFormat(format Format) PipelineOption {
	return func(p *Pipeline) {
		p.Format = format
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		Format: FormatYAML,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pipeline) Process(counts *curve.Counts) Report {
	logger.Sugar().Infow("Building curve report",
		"thresholds", counts.Len(),
		"positives", counts.TotalPositives(),
		"negatives", counts.TotalNegatives(),
		"includePoints", p.IncludePoints,
	)
	return Build(counts, p.IncludePoints)
}

func (p *Pipeline) Write(w io.Writer, r Report) error {
	return Encode(w, r, p.Format)
}
