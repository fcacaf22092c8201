// cmd/param-vault-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/param-vault/param-vault/internal/api/rest/v1"
	"github.com/param-vault/param-vault/internal/app"
	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence/models"
	"github.com/param-vault/param-vault/internal/pkg/config"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	adminParams   params.AdminParamService
	userParams    params.UserParamService
	userDirectory identity.Directory
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.ParameterModel{}, &models.UserParameterModel{}, &models.UserAccountModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	overrideRepo, err := persistence.NewGormOverrideRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create override repository: %w", err)
	}

	userDirectory, err := persistence.NewGormUserDirectory(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user directory: %w", err)
	}

	// Initialize the registry and seed it from the configured catalog
	registry, err := app.NewRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}
	app.SeedRegistry(registry, cfg.Catalog)
	log.Info("Registered parameter namespaces: ", len(registry.Namespaces()))

	// Initialize services
	adminParamService, err := app.NewAdminParamService(registry, overrideRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin param service: %w", err)
	}

	userParamService, err := app.NewUserParamService(registry, overrideRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user param service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		adminParams:   adminParamService,
		userParams:    userParamService,
		userDirectory: userDirectory,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.adminParams,
		deps.userParams,
		deps.userDirectory,
	)

	// Serve OpenAPI spec
	r.GET("/api/v1/pvs/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/param-vault.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
