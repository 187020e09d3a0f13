// Package dataset reads score and label tables from delimited text files and
// joins separate score and label files by key columns.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ReadTable reads a delimited file. Files ending in .zst are decompressed on
// the fly.
func ReadTable(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ZstdExtension) {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "zstd reader for %s", path)
		}
		defer decoder.Close()
		r = decoder
		log.Debug().Str("path", path).Msg("Decompressing zstd input")
	}

	table, err := Parse(r, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	log.Debug().
		Str("path", path).
		Int("rows", len(table.Rows)).
		Int("columns", table.Width()).
		Msg("Read table")
	return table, nil
}

// Parse reads delimited text from r. Lines starting with '#' are skipped and
// every record must have the same number of fields.
func Parse(r io.Reader, opts Options) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = DefaultDelimiter
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = CommentPrefix
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = false

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read records")
	}

	table := &Table{}
	if opts.HasHeader && len(records) > 0 {
		table.Header = records[0]
		records = records[1:]
	}
	table.Rows = records
	return table, nil
}

// Width returns the number of columns, or zero for an empty table without a
// header.
func (t *Table) Width() int {
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return len(t.Header)
}

// Column returns the values of column idx.
func (t *Table) Column(idx int) ([]string, error) {
	if idx < 0 || (len(t.Rows) > 0 && idx >= t.Width()) {
		return nil, errors.Wrapf(ErrColumnRange, "column %d of %d", idx, t.Width())
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = strings.TrimSpace(row[idx])
	}
	return values, nil
}

// Scored returns the parsed scores of scoreCol and the labels of labelCol.
func (t *Table) Scored(scoreCol, labelCol int) ([]float64, []string, error) {
	raw, err := t.Column(scoreCol)
	if err != nil {
		return nil, nil, err
	}
	labels, err := t.Column(labelCol)
	if err != nil {
		return nil, nil, err
	}

	scores := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrInvalidScore, "row %d: %q", i+1, s)
		}
		scores[i] = v
	}
	return scores, labels, nil
}

// Ranked returns the labels of labelCol in file order.
func (t *Table) Ranked(labelCol int) ([]string, error) {
	return t.Column(labelCol)
}
