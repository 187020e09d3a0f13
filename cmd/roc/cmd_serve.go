package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/roc/internal/api"
)

type serveOptions struct {
	host string
	port int
}

var serveFlags serveOptions

func runServeCommand(cmd *cobra.Command, args []string) error {
	serverConfig := &api.ServerConfig{
		Host:        appConfig.Server.Host,
		Port:        appConfig.Server.Port,
		BodyLimit:   appConfig.Server.BodyLimit,
		Compression: api.CompressionConfig{
			MinSize: appConfig.Server.CompressMinSize,
		},
	}
	if serveFlags.host != "" {
		serverConfig.Host = serveFlags.host
	}
	if serveFlags.port != 0 {
		serverConfig.Port = serveFlags.port
	}

	server := api.NewServer(serverConfig)

	// setup signal handling for graceful shutdown before starting the server
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		log.Info().Msg("shutdown signal received, stopping server")
		if err := server.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	if err := server.Start(); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
