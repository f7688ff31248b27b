package main

import (
	"context"
	"flag"

	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/server"
)

// @title CourseHub API
// @version 1.0
// @description API for publishing and browsing courses
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@coursehub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, as "Bearer <token>"

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
