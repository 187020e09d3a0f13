package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tensorplex-labs/roc/internal/report"
	"github.com/tensorplex-labs/roc/pkg/curve"
)

const defaultPositiveLabel = "1"

// createResponse creates a StdResponse with the given body and error
func createResponse[T any](body T, err error) StdResponse[T] {
	if err != nil {
		errMsg := err.Error()
		return StdResponse[T]{
			Body:  body,
			Error: &errMsg,
		}
	}
	return StdResponse[T]{
		Body:  body,
		Error: nil,
	}
}

// Evaluate builds the curve described by req and summarises it.
func Evaluate(req CurveRequest) (report.Report, error) {
	positive := defaultPositiveLabel
	if req.Positive != nil {
		positive = *req.Positive
	}

	counts, err := curve.Build(curve.Input[float64, string]{
		RankedLabels: req.RankedLabels,
		Scores:       req.Scores,
		Labels:       req.Labels,
		Positive:     curve.Positive(positive),
	})
	if err != nil {
		return report.Report{}, err
	}

	return report.NewPipeline(report.WithPoints(req.Points)).Process(counts), nil
}

// statusFor maps evaluation errors to HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, curve.ErrConfiguration) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
