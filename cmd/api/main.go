package main

import (
	"os"

	"github.com/hostelops/washline/internal/pkg/logger"
	"github.com/hostelops/washline/internal/server"
)

// @title Washline API
// @version 1.0
// @description Campus laundry management backend: bag lifecycle tracking, a lost-and-found board and hostel messaging.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
