package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/coursehub/internal/app/auth"
	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// DefaultConfigPath is used when no config path is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseRepository appServices.CourseRepository
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	JWTService       *pkgAuth.JWTService
	AuthzService     *appAuth.AuthorizationService
	Database         *db.PostgresDB // Nil with the memory driver
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewJWTService builds the token service from configuration.
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// SetupDatabase establishes the database connection and runs migrations.
// With the memory driver there is nothing to connect to and it returns nil.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory course store; data will not survive a restart")
		return nil, nil
	}

	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}

	switch {
	case database != nil:
		deps.CourseRepository = appRepos.NewRepositories(database.Pool).CourseRepository
	case cfg.Database.Driver == config.DriverMemory:
		deps.CourseRepository = appRepos.NewMemoryCourseRepository()
	default:
		return nil, fmt.Errorf("no database connection for driver %q", cfg.Database.Driver)
	}

	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.JWTService = NewJWTService(cfg)

	deps.CourseService = appServices.NewCourseService(
		deps.CourseRepository,
		deps.AuthzService,
		appServices.CourseServiceConfig{
			EmptyInstructorList: cfg.Courses.EmptyInstructorList,
			MaxVideoBytes:       cfg.MaxVideoSizeBytes(),
		},
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, cfg.MaxVideoSizeBytes())

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, deps.CourseController, deps.AuthMiddleware)

	router.GET("/health", healthHandler(deps.Database))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

// healthHandler reports liveness and, when a database is configured, whether it answers.
func healthHandler(database *db.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok", "database": "memory"}
		if database != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := database.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down", "error": err.Error()})
				return
			}
			status["database"] = "up"
		}
		c.JSON(http.StatusOK, status)
	}
}
