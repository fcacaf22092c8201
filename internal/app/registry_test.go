//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/pkg/testutil"
)

func setupRegistry(t *testing.T) params.Registry {
	t.Helper()

	registry, err := NewRegistry(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return registry
}

func TestRegisterNamespaceIdempotent(t *testing.T) {
	registry := setupRegistry(t)

	registry.RegisterNamespace("webmail", nil, params.Options{params.OptionNeedsMailbox: true})
	registry.RegisterNamespace("webmail", nil, params.Options{params.OptionNeedsMailbox: false})

	// First registration wins, the second set of options is dropped
	assert.Equal(t, true, registry.Option("webmail", params.LevelUser, params.OptionNeedsMailbox, false))
}

func TestUnregisterNamespace(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

	assert.True(t, registry.UnregisterNamespace("relay"))
	assert.False(t, registry.UnregisterNamespace("relay"))

	_, err := registry.GetDefinition("relay", params.LevelAdmin, "timeout")
	assert.True(t, params.IsNotDefined(err))
	assert.Empty(t, registry.Namespaces())
}

func TestRegisterFirstWins(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})
	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "60"})

	def, err := registry.GetDefinition("relay", params.LevelAdmin, "timeout")
	require.NoError(t, err)
	assert.Equal(t, "30", def.Default())

	// The duplicate must not append a second entry to the order
	assert.Equal(t, []string{"timeout"}, registry.ParameterNames("relay", params.LevelAdmin))
}

func TestRegisterAutoCreatesNamespace(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

	assert.Equal(t, []string{"relay"}, registry.Namespaces())
}

func TestRegisterInvalidLevelIgnored(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.Level("root"), "timeout", params.Metadata{params.MetaDefault: "30"})

	// The namespace is still auto-created, the definition is not stored
	assert.Equal(t, []string{"relay"}, registry.Namespaces())
	for _, level := range params.Levels() {
		assert.Empty(t, registry.ParameterNames("relay", level))
	}
}

func TestRegisterKeepsCallerMetadataDetached(t *testing.T) {
	registry := setupRegistry(t)

	metadata := params.Metadata{params.MetaDefault: "30"}
	registry.Register("relay", params.LevelAdmin, "timeout", metadata)

	// Mutating the caller's mapping must not reach the registry
	metadata[params.MetaDefault] = "99"

	def, err := registry.GetDefinition("relay", params.LevelAdmin, "timeout")
	require.NoError(t, err)
	assert.Equal(t, "30", def.Default())
}

func TestUpdateMergesMetadata(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{
		params.MetaDefault: "30",
		params.MetaLabel:   "Timeout",
	})
	registry.Update("relay", params.LevelAdmin, "timeout", params.Metadata{
		params.MetaDefault: "60",
		params.MetaHelp:    "Connection timeout in seconds",
	})

	def, err := registry.GetDefinition("relay", params.LevelAdmin, "timeout")
	require.NoError(t, err)
	assert.Equal(t, "60", def.Default())
	assert.Equal(t, "Timeout", def[params.MetaLabel])
	assert.Equal(t, "Connection timeout in seconds", def[params.MetaHelp])
}

func TestUpdateUnknownIgnored(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

	// None of these must change anything or panic
	registry.Update("unknown", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "60"})
	registry.Update("relay", params.LevelUser, "timeout", params.Metadata{params.MetaDefault: "60"})
	registry.Update("relay", params.Level("root"), "timeout", params.Metadata{params.MetaDefault: "60"})
	registry.Update("relay", params.LevelAdmin, "unknown", params.Metadata{params.MetaDefault: "60"})

	def, err := registry.GetDefinition("relay", params.LevelAdmin, "timeout")
	require.NoError(t, err)
	assert.Equal(t, "30", def.Default())
}

func TestGetDefinitionNotDefined(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})

	tests := []struct {
		name      string
		namespace string
		level     params.Level
		param     string
	}{
		{name: "unknown namespace", namespace: "unknown", level: params.LevelAdmin, param: "timeout"},
		{name: "unknown parameter", namespace: "relay", level: params.LevelAdmin, param: "unknown"},
		{name: "wrong level", namespace: "relay", level: params.LevelUser, param: "timeout"},
		{name: "invalid level", namespace: "relay", level: params.Level("root"), param: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.GetDefinition(tt.namespace, tt.level, tt.param)
			require.Error(t, err)
			assert.True(t, params.IsNotDefined(err))
		})
	}
}

func TestOption(t *testing.T) {
	registry := setupRegistry(t)

	registry.RegisterNamespace("webmail", params.Options{"max_size": 2048}, params.Options{params.OptionNeedsMailbox: true})

	assert.Equal(t, 2048, registry.Option("webmail", params.LevelAdmin, "max_size", 0))
	assert.Equal(t, true, registry.Option("webmail", params.LevelUser, params.OptionNeedsMailbox, false))

	// Unknown combinations fall back to the supplied default
	assert.Equal(t, false, registry.Option("webmail", params.LevelAdmin, params.OptionNeedsMailbox, false))
	assert.Equal(t, "fallback", registry.Option("webmail", params.LevelUser, "unknown", "fallback"))
	assert.Equal(t, 42, registry.Option("unknown", params.LevelAdmin, "max_size", 42))
}

func TestNamespacesSorted(t *testing.T) {
	registry := setupRegistry(t)

	for _, name := range []string{"webmail", "admin", "relay", "limits"} {
		registry.RegisterNamespace(name, nil, nil)
	}

	assert.Equal(t, []string{"admin", "limits", "relay", "webmail"}, registry.Namespaces())
}

func TestParameterNamesRegistrationOrder(t *testing.T) {
	registry := setupRegistry(t)

	names := []string{"zeta", "alpha", "mid", "beta"}
	for _, name := range names {
		registry.Register("relay", params.LevelAdmin, name, params.Metadata{params.MetaDefault: ""})
	}
	registry.Register("relay", params.LevelUser, "user_only", params.Metadata{params.MetaDefault: ""})

	assert.Equal(t, names, registry.ParameterNames("relay", params.LevelAdmin))
	assert.Equal(t, []string{"user_only"}, registry.ParameterNames("relay", params.LevelUser))
	assert.Nil(t, registry.ParameterNames("unknown", params.LevelAdmin))
}

func TestReset(t *testing.T) {
	registry := setupRegistry(t)

	registry.Register("relay", params.LevelAdmin, "timeout", params.Metadata{params.MetaDefault: "30"})
	registry.Reset()

	assert.Empty(t, registry.Namespaces())
	_, err := registry.GetDefinition("relay", params.LevelAdmin, "timeout")
	assert.True(t, params.IsNotDefined(err))
}
