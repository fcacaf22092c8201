//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence/models"
	"github.com/param-vault/param-vault/internal/pkg/config"
	"github.com/param-vault/param-vault/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	OverrideRepo params.OverrideAdminStore
	Directory    identity.Directory
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.ParameterModel{}, &models.UserParameterModel{}, &models.UserAccountModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	overrideRepo, err := NewGormOverrideRepository(db, logger)
	require.NoError(t, err, "Failed to create override repository")

	directory, err := NewGormUserDirectory(db, logger)
	require.NoError(t, err, "Failed to create user directory")

	return &TestContext{
		DB:           db,
		OverrideRepo: overrideRepo,
		Directory:    directory,
	}
}

// CreateTestUser creates a user account with default values
func CreateTestUser(t *testing.T, mailbox bool) *identity.UserAccount {
	t.Helper()

	id := uuid.NewString()
	return &identity.UserAccount{
		ID:              id,
		Email:           id[:8] + "@example.net",
		Mailbox:         mailbox,
		DateTimeCreated: time.Now(),
	}
}
