package api

import (
	"github.com/gofiber/fiber/v2"
)

const (
	ContentEncodingZstd = "zstd"

	// Server defaults
	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 8888
	DefaultBodyLimit  = 4 * 1024 * 1024 // 4MB

	// DefaultCompressMinSize is the smallest response body worth compressing.
	DefaultCompressMinSize = 64

	// Client defaults
	DefaultClientTimeout = 30 // seconds

	CurvesRoute = "/curves"
	HealthRoute = "/health"
)

// Server represents the curve API server
type Server struct {
	App    *fiber.App
	config *ServerConfig
	closer func()
}

type ServerConfig struct {
	Host        string
	Port        int
	BodyLimit   int
	Compression CompressionConfig
}

// StdResponse represents the standardized response structure
type StdResponse[T any] struct {
	Body  T       `json:"body"`
	Error *string `json:"error,omitempty"`
}

// CurveRequest carries either ranked labels or parallel scores and labels.
// Positive defaults to "1" when omitted.
type CurveRequest struct {
	Scores       []float64 `json:"scores,omitempty"`
	Labels       []string  `json:"labels,omitempty"`
	RankedLabels []string  `json:"ranked_labels,omitempty"`
	Positive     *string   `json:"positive,omitempty"`
	Points       bool      `json:"points,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
