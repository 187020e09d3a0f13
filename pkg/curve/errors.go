package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every input validation failure.
	ErrConfiguration = errors.New("curve: invalid configuration")

	// ErrMissingPositiveLabel indicates Input.Positive was not set.
	ErrMissingPositiveLabel = fmt.Errorf("%w: positive label is required", ErrConfiguration)
	// ErrNoInput indicates neither ranked labels nor scores and labels were supplied.
	ErrNoInput = fmt.Errorf("%w: ranked labels or scores and labels are required", ErrConfiguration)
	// ErrAmbiguousInput indicates both ranked labels and scores/labels were supplied.
	ErrAmbiguousInput = fmt.Errorf("%w: ranked labels and scores/labels are mutually exclusive", ErrConfiguration)
	// ErrLengthMismatch indicates scores and labels differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: scores and labels must have the same length", ErrConfiguration)
	// ErrMissingComparator indicates scores were given to BuildFunc or RankFunc without Compare.
	ErrMissingComparator = fmt.Errorf("%w: a score comparator is required", ErrConfiguration)

	// ErrCountsLength indicates count arrays that are empty or of different lengths.
	ErrCountsLength = errors.New("curve: count arrays must be non-empty and of equal length")
	// ErrRankingGroups indicates tie group sizes that are not positive or do
	// not cover the labels exactly.
	ErrRankingGroups = errors.New("curve: tie groups do not match the ranked labels")
	// ErrCountsInvariant indicates count arrays that do not start at zero or decrease.
	ErrCountsInvariant = errors.New("curve: count arrays violate curve invariants")
)
