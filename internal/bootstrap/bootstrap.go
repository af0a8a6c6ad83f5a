// Package bootstrap assembles the application: configuration, logging,
// database, dependencies and the HTTP router.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hostelops/washline/internal/app/controllers"
	"github.com/hostelops/washline/internal/app/migrations"
	"github.com/hostelops/washline/internal/app/repositories"
	"github.com/hostelops/washline/internal/app/routes"
	"github.com/hostelops/washline/internal/app/services"
	"github.com/hostelops/washline/internal/config"
	"github.com/hostelops/washline/internal/db"
	"github.com/hostelops/washline/internal/middleware"
	pkgAuth "github.com/hostelops/washline/internal/pkg/auth"
	"github.com/hostelops/washline/internal/pkg/filestorage"
	"github.com/hostelops/washline/internal/pkg/helpers"
	"github.com/hostelops/washline/internal/pkg/logger"
	"github.com/hostelops/washline/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services          *services.Services
	AuthController    *controllers.AuthController
	StudentController *controllers.StudentController
	LaundryController *controllers.LaundryController
	ItemController    *controllers.ItemController
	MessageController *controllers.MessageController
	AuthMiddleware    *middleware.AuthMiddleware
	Repos             *repositories.Repositories
	JWTService        *pkgAuth.JWTService
	ImageStore        filestorage.ImageStore
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrations.NewMigrator(dbPool).MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures are not fatal; missing rows are retried next boot
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	imageStore, err := buildImageStore(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize image store")
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	deps.ImageStore = imageStore

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(dbPool, deps.Repos, deps.JWTService, deps.ImageStore, lgr)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = controllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.StudentController = controllers.NewStudentController(deps.Services.StudentService, lgr)
	deps.LaundryController = controllers.NewLaundryController(deps.Services.LaundryService, lgr)
	deps.ItemController = controllers.NewItemController(deps.Services.ItemService, lgr)
	deps.MessageController = controllers.NewMessageController(deps.Services.MessageService, lgr)

	return deps, nil
}

// buildImageStore selects the configured image storage backend
func buildImageStore(cfg *config.Config) (filestorage.ImageStore, error) {
	switch cfg.Storage.Driver {
	case "cloudinary":
		timeout := helpers.ParseDuration(cfg.Storage.UploadTimeout, 30*time.Second)
		return filestorage.NewCloudinaryStorage(cfg.Storage.CloudinaryURL, cfg.Storage.UploadPreset, timeout)
	default:
		// Served back at /uploads, so the stored URL resolves externally
		baseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	if cfg.Server.CORSOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewTokenBucket(cfg.RateLimit.Burst, cfg.RateLimit.PerMinute)
		router.Use(limiter.Middleware())
	}

	routes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.LaundryController,
		deps.ItemController,
		deps.MessageController,
		deps.AuthMiddleware,
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
