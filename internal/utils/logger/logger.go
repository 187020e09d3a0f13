// Package logger provides a global logger for the application
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"
)

// Logger backs Sugar. It is a no-op until Init runs so library code can log
// unconditionally.
var Logger = zap.NewNop()

// Options selects the log level. Flags take precedence over Environment, in
// the order Debug, Trace, Info.
type Options struct {
	Environment string
	Debug       bool
	Trace       bool
	Info        bool
	Output      io.Writer
}

func initLogger(opts Options) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out}).With().Caller().Logger()

	environment := strings.ToLower(opts.Environment)
	if environment == "" {
		environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	}
	if environment == "" {
		environment = "prod"
	}

	logLevel := LevelFor(environment, opts)
	zerolog.SetGlobalLevel(logLevel)

	var zapLogger *zap.Logger
	var err error
	if logLevel <= zerolog.DebugLevel {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to build zap logger, keeping no-op logger")
	} else {
		Logger = zapLogger
	}

	switch logLevel {
	case zerolog.DebugLevel:
		log.Debug().Str("environment", environment).Msg("Debug logging enabled")
	case zerolog.TraceLevel:
		log.Trace().Str("environment", environment).Msg("Trace logging enabled")
	case zerolog.InfoLevel:
		log.Info().Str("environment", environment).Msg("Info logging enabled")
	}
}

// LevelFor resolves the zerolog level for an environment name and flag set.
func LevelFor(environment string, opts Options) zerolog.Level {
	var logLevel zerolog.Level
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	case "prod":
		logLevel = zerolog.InfoLevel
	default:
		logLevel = zerolog.InfoLevel
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}

	if opts.Debug {
		logLevel = zerolog.DebugLevel
	} else if opts.Trace {
		logLevel = zerolog.TraceLevel
	} else if opts.Info {
		logLevel = zerolog.InfoLevel
	}
	return logLevel
}

// Init initializes the logger from the environment and the given options.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init(logger.Options{Debug: debugFlag}) <- inside the command's PersistentPreRun
func Init(opts Options) {
	initLogger(opts)
}

// Sugar returns a sugared logger for easier use
// TODO: replace with zerolog once the report pipeline takes a zerolog.Logger
func Sugar() *zap.SugaredLogger {
	return Logger.Sugar()
}
