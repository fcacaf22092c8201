package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

type fetchFunc func(ctx context.Context, fullName string) (string, error)
type storeFunc func(ctx context.Context, fullName, encoded string) error

// resolveValue returns the decoded override when one is stored, the declared
// default otherwise
func resolveValue(ctx context.Context, def params.Metadata, fullName string, fetch fetchFunc) (string, error) {
	encoded, err := fetch(ctx, fullName)
	if errors.Is(err, params.ErrOverrideNotFound) {
		return def.Default(), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch override for %s: %w", fullName, err)
	}

	return params.DecodeValue(encoded)
}

// saveValue persists value when it differs from the stored one, firing the
// definition's change callback first. Saving an unchanged value writes
// nothing and fires nothing.
func saveValue(ctx context.Context, def params.Metadata, fullName, value string, fetch fetchFunc, store storeFunc) error {
	value = strings.TrimSpace(value)

	current, err := fetch(ctx, fullName)
	switch {
	case errors.Is(err, params.ErrOverrideNotFound):
		// no override yet, treat as a change
	case err != nil:
		return fmt.Errorf("failed to fetch override for %s: %w", fullName, err)
	default:
		decoded, decodeErr := params.DecodeValue(current)
		if decodeErr != nil {
			return decodeErr
		}
		if decoded == value {
			return nil
		}
	}

	if callback := def.ChangeCallback(); callback != nil {
		callback(value)
	}

	if err := store(ctx, fullName, params.EncodeValue(value)); err != nil {
		return fmt.Errorf("failed to store override for %s: %w", fullName, err)
	}
	return nil
}

// adminParamService implements the params.AdminParamService interface
type adminParamService struct {
	registry params.Registry
	store    params.OverrideStore
	logger   logger.Logger
}

// NewAdminParamService creates a new adminParamService instance
func NewAdminParamService(registry params.Registry, store params.OverrideStore, logger logger.Logger) (params.AdminParamService, error) {
	return &adminParamService{
		registry: registry,
		store:    store,
		logger:   logger,
	}, nil
}

// Get returns the effective value of an admin-level parameter.
func (s *adminParamService) Get(ctx context.Context, namespace, name string) (string, error) {
	def, err := s.registry.GetDefinition(namespace, params.LevelAdmin, name)
	if err != nil {
		return "", err
	}

	return resolveValue(ctx, def, params.FullName(namespace, name), s.store.Fetch)
}

// Save persists a new value for an admin-level parameter.
func (s *adminParamService) Save(ctx context.Context, namespace, name, value string) error {
	def, err := s.registry.GetDefinition(namespace, params.LevelAdmin, name)
	if err != nil {
		return err
	}

	return saveValue(ctx, def, params.FullName(namespace, name), value, s.store.Fetch, s.store.Store)
}

// List resolves every admin-level parameter, namespaces in lexicographic
// order and parameters in registration order. Namespaces without admin-level
// parameters are included with an empty parameter list.
func (s *adminParamService) List(ctx context.Context) ([]params.NamespaceParams, error) {
	result := []params.NamespaceParams{}
	for _, namespace := range s.registry.Namespaces() {
		group := params.NamespaceParams{Name: namespace, Params: []params.ResolvedParam{}}
		for _, name := range s.registry.ParameterNames(namespace, params.LevelAdmin) {
			def, err := s.registry.GetDefinition(namespace, params.LevelAdmin, name)
			if err != nil {
				return nil, err
			}
			value, err := resolveValue(ctx, def, params.FullName(namespace, name), s.store.Fetch)
			if err != nil {
				return nil, err
			}
			group.Params = append(group.Params, params.ResolvedParam{
				Name:     name,
				Value:    value,
				Metadata: def.Clone(),
			})
		}
		result = append(result, group)
	}
	return result, nil
}

// userParamService implements the params.UserParamService interface
type userParamService struct {
	registry params.Registry
	store    params.OverrideStore
	logger   logger.Logger
}

// NewUserParamService creates a new userParamService instance
func NewUserParamService(registry params.Registry, store params.OverrideStore, logger logger.Logger) (params.UserParamService, error) {
	return &userParamService{
		registry: registry,
		store:    store,
		logger:   logger,
	}, nil
}

func (s *userParamService) fetchFor(user params.UserIdentity) fetchFunc {
	return func(ctx context.Context, fullName string) (string, error) {
		return s.store.FetchForUser(ctx, user.Identity(), fullName)
	}
}

func (s *userParamService) storeFor(user params.UserIdentity) storeFunc {
	return func(ctx context.Context, fullName, encoded string) error {
		return s.store.StoreForUser(ctx, user.Identity(), fullName, encoded)
	}
}

// Get returns the effective value of a user-level parameter for the given user.
func (s *userParamService) Get(ctx context.Context, user params.UserIdentity, namespace, name string) (string, error) {
	def, err := s.registry.GetDefinition(namespace, params.LevelUser, name)
	if err != nil {
		return "", err
	}

	return resolveValue(ctx, def, params.FullName(namespace, name), s.fetchFor(user))
}

// Save persists a new value of a user-level parameter for the given user.
func (s *userParamService) Save(ctx context.Context, user params.UserIdentity, namespace, name, value string) error {
	def, err := s.registry.GetDefinition(namespace, params.LevelUser, name)
	if err != nil {
		return err
	}

	return saveValue(ctx, def, params.FullName(namespace, name), value, s.fetchFor(user), s.storeFor(user))
}

// List resolves every user-level parameter visible to the given user.
// Namespaces without user-level parameters are skipped, as are namespaces
// requiring a mailbox when the user owns none.
func (s *userParamService) List(ctx context.Context, user params.UserIdentity) ([]params.NamespaceParams, error) {
	result := []params.NamespaceParams{}
	for _, namespace := range s.registry.Namespaces() {
		names := s.registry.ParameterNames(namespace, params.LevelUser)
		if len(names) == 0 {
			continue
		}
		needsMailbox, _ := s.registry.Option(namespace, params.LevelUser, params.OptionNeedsMailbox, false).(bool)
		if needsMailbox && !user.HasMailbox() {
			continue
		}

		group := params.NamespaceParams{Name: namespace, Params: []params.ResolvedParam{}}
		for _, name := range names {
			def, err := s.registry.GetDefinition(namespace, params.LevelUser, name)
			if err != nil {
				return nil, err
			}
			value, err := resolveValue(ctx, def, params.FullName(namespace, name), s.fetchFor(user))
			if err != nil {
				return nil, err
			}
			group.Params = append(group.Params, params.ResolvedParam{
				Name:     name,
				Value:    value,
				Metadata: def.Clone(),
			})
		}
		result = append(result, group)
	}
	return result, nil
}
