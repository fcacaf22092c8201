//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
)

// MockAdminParamService is a mock implementation of AdminParamService
type MockAdminParamService struct {
	mock.Mock
}

func (m *MockAdminParamService) Get(ctx context.Context, namespace, name string) (string, error) {
	args := m.Called(ctx, namespace, name)
	return args.String(0), args.Error(1)
}

func (m *MockAdminParamService) Save(ctx context.Context, namespace, name, value string) error {
	args := m.Called(ctx, namespace, name, value)
	return args.Error(0)
}

func (m *MockAdminParamService) List(ctx context.Context) ([]params.NamespaceParams, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]params.NamespaceParams), args.Error(1)
}

// MockUserParamService is a mock implementation of UserParamService
type MockUserParamService struct {
	mock.Mock
}

func (m *MockUserParamService) Get(ctx context.Context, user params.UserIdentity, namespace, name string) (string, error) {
	args := m.Called(ctx, user, namespace, name)
	return args.String(0), args.Error(1)
}

func (m *MockUserParamService) Save(ctx context.Context, user params.UserIdentity, namespace, name, value string) error {
	args := m.Called(ctx, user, namespace, name, value)
	return args.Error(0)
}

func (m *MockUserParamService) List(ctx context.Context, user params.UserIdentity) ([]params.NamespaceParams, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]params.NamespaceParams), args.Error(1)
}

// MockUserDirectory is a mock implementation of Directory
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) Create(ctx context.Context, account *identity.UserAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockUserDirectory) GetByID(ctx context.Context, userID string) (*identity.UserAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserAccount), args.Error(1)
}

func (m *MockUserDirectory) List(ctx context.Context) ([]*identity.UserAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.UserAccount), args.Error(1)
}
