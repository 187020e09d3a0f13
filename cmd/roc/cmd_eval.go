package main

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/roc/internal/api"
	"github.com/tensorplex-labs/roc/internal/config"
	"github.com/tensorplex-labs/roc/internal/dataset"
	"github.com/tensorplex-labs/roc/internal/report"
	"github.com/tensorplex-labs/roc/pkg/curve"
)

type evalOptions struct {
	scoresPath   string
	labelsPath   string
	scoreKeyCols []int
	labelKeyCols []int
	ranked       bool
	scoreCol     int
	labelCol     int
	positive     string
	format       string
	points       bool
	remote       string
	delimiter    string
	header       bool
}

var evalFlags evalOptions

func runEvalCommand(cmd *cobra.Command, args []string) error {
	opts := evalFlags
	if !cmd.Flags().Changed("header") {
		opts.header = appConfig.Dataset.HasHeader
	}
	if !cmd.Flags().Changed("points") {
		opts.points = appConfig.Report.IncludePoints
	}
	return runEval(cmd.Context(), opts, appConfig, cmd.OutOrStdout())
}

// runEval fills unset options from cfg, loads the input tables and writes
// the report to out.
func runEval(ctx context.Context, opts evalOptions, cfg *config.AppConfig, out io.Writer) error {
	if opts.positive == "" {
		opts.positive = cfg.Report.PositiveLabel
	}
	if opts.format == "" {
		opts.format = cfg.Report.Format
	}
	if opts.delimiter == "" {
		opts.delimiter = cfg.Dataset.Delimiter
	}
	if opts.remote == "" {
		opts.remote = cfg.Client.BaseURL
	}

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	delimiter, err := parseDelimiter(opts.delimiter)
	if err != nil {
		return err
	}

	req, err := loadRequest(opts, dataset.Options{Delimiter: delimiter, HasHeader: opts.header})
	if err != nil {
		return err
	}

	pipeline := report.NewPipeline(report.WithPoints(opts.points), report.WithFormat(format))

	var rep report.Report
	if opts.remote != "" {
		rep, err = evaluateRemote(ctx, opts.remote, cfg.Client, req)
	} else {
		rep, err = evaluateLocal(pipeline, req)
	}
	if err != nil {
		return err
	}

	return pipeline.Write(out, rep)
}

func loadRequest(opts evalOptions, tableOpts dataset.Options) (api.CurveRequest, error) {
	req := api.CurveRequest{Positive: &opts.positive, Points: opts.points}

	table, err := dataset.ReadTable(opts.scoresPath, tableOpts)
	if err != nil {
		return req, err
	}

	labelCol := opts.labelCol
	if opts.labelsPath != "" {
		if opts.ranked {
			return req, errors.New("--labels cannot be combined with --ranked")
		}
		labels, err := dataset.ReadTable(opts.labelsPath, tableOpts)
		if err != nil {
			return req, err
		}
		scoreWidth := table.Width()
		table, err = dataset.Join(table, labels, opts.scoreKeyCols, opts.labelKeyCols)
		if err != nil {
			return req, err
		}
		labelCol += scoreWidth
	}

	if opts.ranked {
		req.RankedLabels, err = table.Ranked(labelCol)
		if err != nil {
			return req, err
		}
	} else {
		req.Scores, req.Labels, err = table.Scored(opts.scoreCol, labelCol)
		if err != nil {
			return req, err
		}
	}

	log.Debug().
		Str("scores", opts.scoresPath).
		Str("labels", opts.labelsPath).
		Int("rows", len(table.Rows)).
		Bool("ranked", opts.ranked).
		Msg("Loaded evaluation input")
	return req, nil
}

func evaluateLocal(pipeline *report.Pipeline, req api.CurveRequest) (report.Report, error) {
	counts, err := curve.Build(curve.Input[float64, string]{
		RankedLabels: req.RankedLabels,
		Scores:       req.Scores,
		Labels:       req.Labels,
		Positive:     req.Positive,
	})
	if err != nil {
		return report.Report{}, err
	}
	return pipeline.Process(counts), nil
}

func evaluateRemote(ctx context.Context, baseURL string, cfg config.ClientEnvConfig, req api.CurveRequest) (report.Report, error) {
	client, err := api.NewClient(&api.ClientConfig{
		BaseURL:         baseURL,
		Timeout:         cfg.Timeout,
		ZstdCompression: cfg.Zstd,
	})
	if err != nil {
		return report.Report{}, err
	}
	defer client.Close()

	return client.Evaluate(ctx, req)
}

// parseDelimiter accepts a single character or the escape `\t`.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return dataset.DefaultDelimiter, nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
