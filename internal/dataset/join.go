package dataset

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type keyedRow struct {
	key string
	row []string
}

// Join combines a score table and a label table by key columns with a
// sort-merge join. Each joined row holds the left columns followed by the
// right columns, so right column j is at index left.Width()+j. Rows without a
// partner are dropped; a key repeated within one table is an error.
func Join(left, right *Table, leftKeys, rightKeys []int) (*Table, error) {
	if len(leftKeys) == 0 || len(leftKeys) != len(rightKeys) {
		return nil, errors.Errorf("dataset: join needs matching key columns, got %d and %d", len(leftKeys), len(rightKeys))
	}

	lrows, err := sortedByKey(left, leftKeys)
	if err != nil {
		return nil, errors.Wrap(err, "left table")
	}
	rrows, err := sortedByKey(right, rightKeys)
	if err != nil {
		return nil, errors.Wrap(err, "right table")
	}

	joined := &Table{Rows: make([][]string, 0, min(len(lrows), len(rrows)))}
	if left.Header != nil && right.Header != nil {
		joined.Header = slices.Concat(left.Header, right.Header)
	}

	var i, j, unmatchedLeft, unmatchedRight int
	for i < len(lrows) && j < len(rrows) {
		switch strings.Compare(lrows[i].key, rrows[j].key) {
		case 0:
			joined.Rows = append(joined.Rows, slices.Concat(lrows[i].row, rrows[j].row))
			i++
			j++
		case -1:
			unmatchedLeft++
			i++
		default:
			unmatchedRight++
			j++
		}
	}
	unmatchedLeft += len(lrows) - i
	unmatchedRight += len(rrows) - j

	if unmatchedLeft > 0 || unmatchedRight > 0 {
		log.Warn().
			Int("unmatched_left", unmatchedLeft).
			Int("unmatched_right", unmatchedRight).
			Int("joined", len(joined.Rows)).
			Msg("Join dropped rows without a matching key")
	}
	return joined, nil
}

func sortedByKey(t *Table, keys []int) ([]keyedRow, error) {
	width := t.Width()
	for _, k := range keys {
		if k < 0 || (len(t.Rows) > 0 && k >= width) {
			return nil, errors.Wrapf(ErrColumnRange, "key column %d of %d", k, width)
		}
	}

	rows := make([]keyedRow, len(t.Rows))
	parts := make([]string, len(keys))
	for i, row := range t.Rows {
		for p, k := range keys {
			parts[p] = strings.TrimSpace(row[k])
		}
		rows[i] = keyedRow{key: strings.Join(parts, "\x00"), row: row}
	}

	slices.SortStableFunc(rows, func(a, b keyedRow) int {
		return strings.Compare(a.key, b.key)
	})

	for i := 1; i < len(rows); i++ {
		if rows[i].key == rows[i-1].key {
			return nil, errors.Wrapf(ErrDuplicateKey, "key %q", strings.ReplaceAll(rows[i].key, "\x00", ","))
		}
	}
	return rows, nil
}
