package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		opts        Options
		want        zerolog.Level
	}{
		{name: "prod", environment: "prod", want: zerolog.InfoLevel},
		{name: "dev", environment: "dev", want: zerolog.TraceLevel},
		{name: "test", environment: "test", want: zerolog.TraceLevel},
		{name: "unknown", environment: "staging", want: zerolog.InfoLevel},
		{name: "debug flag wins", environment: "prod", opts: Options{Debug: true, Trace: true}, want: zerolog.DebugLevel},
		{name: "trace flag", environment: "prod", opts: Options{Trace: true}, want: zerolog.TraceLevel},
		{name: "info flag", environment: "dev", opts: Options{Info: true}, want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.environment, tt.opts))
		})
	}
}

func TestInitWritesToOutput(t *testing.T) {
	original := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})

	var buf bytes.Buffer
	Init(Options{Environment: "prod", Output: &buf})

	log.Info().Msg("hello from test")
	assert.Contains(t, buf.String(), "hello from test")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.NotNil(t, Sugar())
}
