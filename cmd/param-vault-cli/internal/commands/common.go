package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/param-vault/param-vault/internal/pkg/config"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

// Database environment variable names, matching the REST service prefix
const (
	EnvDatabaseType = "PARAMVAULT_DATABASE_TYPE"
	EnvDatabaseDSN  = "PARAMVAULT_DATABASE_DSN"
	EnvDatabaseName = "PARAMVAULT_DATABASE_DB_NAME"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// ReadDatabaseSettingsFromEnv reads the database configuration from
// environment variables. The type defaults to sqlite, the DSN is required.
func ReadDatabaseSettingsFromEnv() (*config.DatabaseSettings, error) {
	dbType := os.Getenv(EnvDatabaseType)
	if dbType == "" {
		dbType = config.SqliteDbType
	}

	var missing []string
	dsn := os.Getenv(EnvDatabaseDSN)
	if dsn == "" {
		missing = append(missing, EnvDatabaseDSN)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	settings := &config.DatabaseSettings{
		Type:   dbType,
		DSN:    dsn,
		DBName: os.Getenv(EnvDatabaseName),
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}

	return settings, nil
}
