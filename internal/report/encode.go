package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt", "plain":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown report format %q", name)
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON:
		data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	case FormatText:
		return encodeText(w, r)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func encodeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := []struct {
		name  string
		value any
	}{
		{"total positives", r.TotalPositives},
		{"total negatives", r.TotalNegatives},
		{"thresholds", r.Thresholds},
		{"ROC area", float64(r.ROCArea)},
		{"ROC area (trapezoid)", float64(r.ROCAreaTrapezoid)},
		{"Mann-Whitney U (positives)", float64(r.MannWhitneyUPos)},
		{"Mann-Whitney U (negatives)", float64(r.MannWhitneyUNeg)},
		{"PR area", float64(r.PRArea)},
		{"hull ROC area", float64(r.HullROCArea)},
		{"hull thresholds", r.HullThresholds},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.name, row.value)
	}

	for _, section := range []struct {
		name   string
		points []Point
	}{
		{"ROC points (fpr, tpr)", r.ROCPoints},
		{"PR points (recall, precision)", r.PRPoints},
		{"hull points (fpr, tpr)", r.HullPoints},
	} {
		if len(section.points) == 0 {
			continue
		}
		fmt.Fprintf(tw, "\n%s\n", section.name)
		for _, p := range section.points {
			fmt.Fprintf(tw, "%v\t%v\n", float64(p.X), float64(p.Y))
		}
	}

	return tw.Flush()
}
