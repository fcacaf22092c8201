package app

import (
	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/pkg/config"
)

// SeedRegistry registers every namespace and parameter declared in the
// catalog. Declaration order in the catalog becomes registration order.
func SeedRegistry(registry params.Registry, catalog []config.NamespaceCatalog) {
	for _, namespace := range catalog {
		var userOptions params.Options
		if namespace.NeedsMailbox {
			userOptions = params.Options{params.OptionNeedsMailbox: true}
		}
		registry.RegisterNamespace(namespace.Name, nil, userOptions)

		for _, entry := range namespace.AdminParams {
			registry.Register(namespace.Name, params.LevelAdmin, entry.Name, catalogMetadata(entry))
		}
		for _, entry := range namespace.UserParams {
			registry.Register(namespace.Name, params.LevelUser, entry.Name, catalogMetadata(entry))
		}
	}
}

func catalogMetadata(entry config.ParameterCatalogEntry) params.Metadata {
	metadata := params.Metadata{params.MetaDefault: entry.Default}
	if entry.Label != "" {
		metadata[params.MetaLabel] = entry.Label
	}
	if entry.Help != "" {
		metadata[params.MetaHelp] = entry.Help
	}
	if entry.Type != "" {
		metadata[params.MetaType] = entry.Type
	}
	if len(entry.Values) > 0 {
		metadata[params.MetaValues] = append([]string(nil), entry.Values...)
	}
	return metadata
}
