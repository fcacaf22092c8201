package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/param-vault/param-vault/internal/pkg/validators"
)

// ParameterCatalogEntry declares one parameter a namespace owns
type ParameterCatalogEntry struct {
	Name    string   `mapstructure:"name" validate:"required,paramNameValidation"`
	Default string   `mapstructure:"default"`
	Label   string   `mapstructure:"label"`
	Help    string   `mapstructure:"help"`
	Type    string   `mapstructure:"type" validate:"omitempty,oneof=string int bool list"`
	Values  []string `mapstructure:"values"`
}

// NamespaceCatalog declares a namespace and the parameters it registers
// at startup, split by level
type NamespaceCatalog struct {
	Name         string                  `mapstructure:"name" validate:"required,paramNameValidation"`
	NeedsMailbox bool                    `mapstructure:"needs_mailbox"`
	AdminParams  []ParameterCatalogEntry `mapstructure:"admin_params" validate:"dive"`
	UserParams   []ParameterCatalogEntry `mapstructure:"user_params" validate:"dive"`
}

// Validate checks that the namespace declaration is complete
func (n *NamespaceCatalog) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("paramNameValidation", validators.ParamNameValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("validation failed for NamespaceCatalog: %w", err)
	}

	return nil
}
