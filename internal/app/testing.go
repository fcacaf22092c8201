//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence"
	"github.com/param-vault/param-vault/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	Registry          params.Registry
	AdminParamService params.AdminParamService
	UserParamService  params.UserParamService
	Directory         identity.Directory

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup registry
	registry, err := NewRegistry(logger)
	require.NoError(t, err, "Failed to create registry")

	// Initialize parameter services
	adminParamService, err := NewAdminParamService(registry, dbContext.OverrideRepo, logger)
	require.NoError(t, err, "Failed to create AdminParamService")

	userParamService, err := NewUserParamService(registry, dbContext.OverrideRepo, logger)
	require.NoError(t, err, "Failed to create UserParamService")

	return &TestServices{
		Registry:          registry,
		AdminParamService: adminParamService,
		UserParamService:  userParamService,
		Directory:         dbContext.Directory,
		DBContext:         dbContext,
	}
}
