// Package api serves curve evaluation over HTTP and provides a client for it.
package api

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/roc/internal/report"
)

// NewServer creates a new curve API server
func NewServer(serverConfig *ServerConfig) *Server {
	if serverConfig == nil {
		serverConfig = &ServerConfig{
			Host:      DefaultServerHost,
			Port:      DefaultServerPort,
			BodyLimit: DefaultBodyLimit,
		}
	}
	if serverConfig.BodyLimit == 0 {
		serverConfig.BodyLimit = DefaultBodyLimit
	}
	if serverConfig.Compression.SkipRoutes == nil {
		serverConfig.Compression.SkipRoutes = []string{HealthRoute}
	}
	if serverConfig.Compression.MinSize == 0 {
		serverConfig.Compression.MinSize = DefaultCompressMinSize
	}

	log.Info().
		Any("serverConfig", serverConfig).
		Msg("Server configuration loaded")

	app := fiber.New(fiber.Config{
		Prefork:               false,
		DisableStartupMessage: true,
		ErrorHandler:          fiberErrHandler,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             serverConfig.BodyLimit,
	})

	app.Use(recover.New()) // add panic recovery

	server := &Server{
		App:    app,
		config: serverConfig,
	}

	zstdHandler, closer, err := ZstdMiddleware(serverConfig.Compression, serverConfig.BodyLimit)
	if err != nil {
		log.Error().Err(err).Msg("Serving without zstd support")
	} else {
		app.Use(zstdHandler)
		server.closer = closer
	}

	app.Get(HealthRoute, func(c *fiber.Ctx) error {
		return c.JSON(createResponse(HealthResponse{Status: "ok"}, nil))
	})
	app.Post(CurvesRoute, handleCurves)

	return server
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("Fiber error handler triggered")

	return ctx.Status(code).JSON(createResponse(map[string]interface{}{}, err))
}

func handleCurves(c *fiber.Ctx) error {
	var req CurveRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().
			Err(err).
			Str("route", CurvesRoute).
			Msg("Failed to parse request body")
		return c.Status(fiber.StatusBadRequest).
			JSON(createResponse(report.Report{}, err))
	}

	resp, err := Evaluate(req)
	if err != nil {
		log.Warn().
			Err(err).
			Str("route", CurvesRoute).
			Msg("Curve evaluation failed")
		return c.Status(statusFor(err)).JSON(createResponse(report.Report{}, err))
	}

	log.Debug().
		Int64("positives", resp.TotalPositives).
		Int64("negatives", resp.TotalNegatives).
		Float64("roc_area", float64(resp.ROCArea)).
		Msg("Evaluated curve")
	return c.JSON(createResponse(resp, nil))
}

// Address returns the host:port the server listens on.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start blocks serving requests until the server fails or is shut down.
func (s *Server) Start() error {
	log.Info().Str("address", s.Address()).Msg("Starting curve API server")
	return s.App.Listen(s.Address())
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	err := s.App.Shutdown()
	if s.closer != nil {
		s.closer()
		s.closer = nil
	}
	return err
}
