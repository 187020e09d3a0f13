package dataset

import "github.com/pkg/errors"

const (
	DefaultDelimiter = ','
	CommentPrefix    = '#'
	ZstdExtension    = ".zst"
)

var (
	ErrColumnRange  = errors.New("dataset: column index out of range")
	ErrDuplicateKey = errors.New("dataset: duplicate join key")
	ErrInvalidScore = errors.New("dataset: score is not a number")
)

// Options controls how delimited text is parsed.
type Options struct {
	Delimiter rune // zero means DefaultDelimiter
	HasHeader bool
}

// Table is a parsed delimited file. All rows have the same width.
type Table struct {
	Header []string
	Rows   [][]string
}
