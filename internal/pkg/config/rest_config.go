package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates the settings for the REST service
type RestConfig struct {
	Port     string             `mapstructure:"port"`
	Logger   LoggerSettings     `mapstructure:"logger"`
	Database DatabaseSettings   `mapstructure:"database"`
	Catalog  []NamespaceCatalog `mapstructure:"catalog"`
}

// Validate checks all nested settings
func (c *RestConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	for i := range c.Catalog {
		if err := c.Catalog[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// envKeys lists the configuration keys that may be overridden through the
// environment. Viper only resolves env values during Unmarshal for keys it
// already knows about, so each one is bound explicitly.
var envKeys = []string{
	"port",
	"logger.log_level",
	"logger.log_type",
	"logger.file_path",
	"database.type",
	"database.dsn",
	"database.db_name",
}

// InitializeRestConfig reads the REST service configuration from the YAML
// file at configPath. Environment variables use the prefix "PARAMVAULT" and
// dots in keys are replaced by underscores, so "database.dsn" becomes
// "PARAMVAULT_DATABASE_DSN".
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("PARAMVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := &RestConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
