// Command tokengen mints an access token accepted by the API, for local
// testing and operator use. It reads the same config file and env as the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	userID := flag.Int64("user", 0, "user id carried in the token (required)")
	email := flag.String("email", "", "email carried in the token")
	role := flag.String("role", string(models.RoleInstructor), "role: STUDENT, INSTRUCTOR or ADMIN")
	flag.Parse()

	roleType := models.RoleType(strings.ToUpper(*role))
	if *userID <= 0 || !roleType.IsValid() {
		flag.Usage()
		os.Exit(2)
	}

	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		os.Exit(1)
	}
	// Stdout carries only the token.
	logger.Configure(logger.Config{Level: logger.ParseLevel(cfg.Logging.Level), Output: os.Stderr})
	lgr := logger.WithField("command", "tokengen")

	token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateAccessToken(*userID, *email, roleType)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to generate access token")
	}

	lgr.Info().
		Int64("userID", *userID).
		Str("role", string(roleType)).
		Str("expiresAt", expiresAt.UTC().Format(time.RFC3339)).
		Msg("Access token generated")
	fmt.Println(token)
}
