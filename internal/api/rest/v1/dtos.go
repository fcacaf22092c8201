package v1

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
)

// SaveParameterRequest represents the payload for setting a parameter value
type SaveParameterRequest struct {
	Value string `json:"value" validate:"max=255"`
}

// Validate method to check if the request is valid
func (r *SaveParameterRequest) Validate() error {
	validate := validator.New()
	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %s", strings.Join(messages, ", "))
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// CreateUserRequest represents the payload for registering a user account
type CreateUserRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Mailbox bool   `json:"mailbox"`
}

// Validate method to check if the request is valid
func (r *CreateUserRequest) Validate() error {
	validate := validator.New()
	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %s", strings.Join(messages, ", "))
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// ParameterResponse represents one resolved parameter in API responses
type ParameterResponse struct {
	Name    string   `json:"name"`
	Value   string   `json:"value"`
	Default string   `json:"default,omitempty"`
	Label   string   `json:"label,omitempty"`
	Help    string   `json:"help,omitempty"`
	Type    string   `json:"type,omitempty"`
	Values  []string `json:"values,omitempty"`
}

// NamespaceParamsResponse groups the resolved parameters of one namespace
type NamespaceParamsResponse struct {
	Name       string              `json:"name"`
	Parameters []ParameterResponse `json:"parameters"`
}

// ValueResponse represents a single resolved parameter value
type ValueResponse struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Value     string `json:"value"`
}

// UserAccountResponse represents a user account in API responses
type UserAccountResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Mailbox         bool      `json:"mailbox"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// newParameterResponse flattens a resolved parameter into its response shape.
// Metadata values of unexpected types, such as change callbacks, are dropped.
func newParameterResponse(param params.ResolvedParam) ParameterResponse {
	return ParameterResponse{
		Name:    param.Name,
		Value:   param.Value,
		Default: param.Metadata.Default(),
		Label:   metaString(param.Metadata, params.MetaLabel),
		Help:    metaString(param.Metadata, params.MetaHelp),
		Type:    metaString(param.Metadata, params.MetaType),
		Values:  metaStrings(param.Metadata, params.MetaValues),
	}
}

func newNamespaceParamsResponse(namespaces []params.NamespaceParams) []NamespaceParamsResponse {
	var listResponse = []NamespaceParamsResponse{}
	for _, namespace := range namespaces {
		namespaceResponse := NamespaceParamsResponse{
			Name:       namespace.Name,
			Parameters: []ParameterResponse{},
		}
		for _, param := range namespace.Params {
			namespaceResponse.Parameters = append(namespaceResponse.Parameters, newParameterResponse(param))
		}
		listResponse = append(listResponse, namespaceResponse)
	}
	return listResponse
}

func newUserAccountResponse(account *identity.UserAccount) UserAccountResponse {
	return UserAccountResponse{
		ID:              account.ID,
		Email:           account.Email,
		Mailbox:         account.Mailbox,
		DateTimeCreated: account.DateTimeCreated,
	}
}

func metaString(meta params.Metadata, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

func metaStrings(meta params.Metadata, key string) []string {
	if v, ok := meta[key].([]string); ok {
		return v
	}
	return nil
}
