//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence/models"
	"github.com/param-vault/param-vault/internal/pkg/config"
)

// TestAdminParamService_Operations exercises the admin-level resolution flow
// against a real override store
func TestAdminParamService_Operations(t *testing.T) {
	t.Run("get falls back to the declared default", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		services.Registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

		value, err := services.AdminParamService.Get(ctx, "relay", "timeout")
		require.NoError(t, err)
		require.Equal(t, "30", value)
	})

	t.Run("save and get round-trip", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		services.Registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

		err := services.AdminParamService.Save(ctx, "relay", "timeout", "60")
		require.NoError(t, err)

		value, err := services.AdminParamService.Get(ctx, "relay", "timeout")
		require.NoError(t, err)
		require.Equal(t, "60", value)

		// The row is persisted under the fully-qualified name, encoded
		var model models.ParameterModel
		require.NoError(t, services.DBContext.DB.First(&model, "name = ?", "relay.timeout").Error)
		require.Equal(t, params.EncodeValue("60"), model.Value)
	})

	t.Run("save trims surrounding whitespace", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		services.Registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

		require.NoError(t, services.AdminParamService.Save(ctx, "relay", "timeout", "  60  "))

		value, err := services.AdminParamService.Get(ctx, "relay", "timeout")
		require.NoError(t, err)
		require.Equal(t, "60", value)
	})

	t.Run("change callback fires before the override is persisted", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		var callbackValues []string
		services.Registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{
			params.MetaDefault: "30",
			params.MetaModifyCallback: params.ChangeCallback(func(value string) {
				callbackValues = append(callbackValues, value)

				// The store must not contain the new value yet
				_, err := services.DBContext.OverrideRepo.Fetch(ctx, "relay.timeout")
				assert.ErrorIs(t, err, params.ErrOverrideNotFound)
			}),
		})

		require.NoError(t, services.AdminParamService.Save(ctx, "relay", "timeout", "60"))
		require.Equal(t, []string{"60"}, callbackValues)

		// Saving the same value again changes nothing and fires no callback
		require.NoError(t, services.AdminParamService.Save(ctx, "relay", "timeout", "60"))
		require.Equal(t, []string{"60"}, callbackValues)
	})

	t.Run("get of an unregistered parameter returns not defined", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		_, err := services.AdminParamService.Get(ctx, "unknown", "timeout")
		require.Error(t, err)
		require.True(t, params.IsNotDefined(err))
	})

	t.Run("list resolves overrides and defaults together", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		services.Registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})
		services.Registry.Register("relay", params.LevelAdmin, "retries", params.Metadata{params.MetaDefault: "3"})

		require.NoError(t, services.AdminParamService.Save(ctx, "relay", "timeout", "60"))

		namespaces, err := services.AdminParamService.List(ctx)
		require.NoError(t, err)
		require.Len(t, namespaces, 1)
		require.Equal(t, "relay", namespaces[0].Name)
		require.Len(t, namespaces[0].Params, 2)
		require.Equal(t, "60", namespaces[0].Params[0].Value)
		require.Equal(t, "3", namespaces[0].Params[1].Value)
	})
}

// TestUserParamService_Operations exercises the user-level resolution flow
// against a real override store and user directory
func TestUserParamService_Operations(t *testing.T) {
	t.Run("overrides are scoped per user", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		services.Registry.Register("webmail", params.LevelUser, "display_mode", params.Metadata{params.MetaDefault: "plain"})

		alice := persistence.CreateTestUser(t, true)
		bob := persistence.CreateTestUser(t, true)
		require.NoError(t, services.Directory.Create(ctx, alice))
		require.NoError(t, services.Directory.Create(ctx, bob))

		require.NoError(t, services.UserParamService.Save(ctx, alice, "webmail", "display_mode", "html"))

		value, err := services.UserParamService.Get(ctx, alice, "webmail", "display_mode")
		require.NoError(t, err)
		require.Equal(t, "html", value)

		value, err = services.UserParamService.Get(ctx, bob, "webmail", "display_mode")
		require.NoError(t, err)
		require.Equal(t, "plain", value)
	})

	t.Run("list skips namespaces requiring a mailbox the user lacks", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		services.Registry.RegisterNamespace("webmail", nil, params.Options{params.OptionNeedsMailbox: true})
		services.Registry.Register("webmail", params.LevelUser, "display_mode", params.Metadata{params.MetaDefault: "plain"})
		services.Registry.Register("general", params.LevelUser, "lang", params.Metadata{params.MetaDefault: "en"})

		withMailbox := persistence.CreateTestUser(t, true)
		withoutMailbox := persistence.CreateTestUser(t, false)
		require.NoError(t, services.Directory.Create(ctx, withMailbox))
		require.NoError(t, services.Directory.Create(ctx, withoutMailbox))

		namespaces, err := services.UserParamService.List(ctx, withMailbox)
		require.NoError(t, err)
		require.Len(t, namespaces, 2)

		namespaces, err = services.UserParamService.List(ctx, withoutMailbox)
		require.NoError(t, err)
		require.Len(t, namespaces, 1)
		require.Equal(t, "general", namespaces[0].Name)
	})
}
