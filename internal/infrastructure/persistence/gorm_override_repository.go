package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence/models"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

type gormOverrideRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOverrideRepository creates a new GORM-based OverrideAdminStore implementation
func NewGormOverrideRepository(db *gorm.DB, logger logger.Logger) (params.OverrideAdminStore, error) {
	return &gormOverrideRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Fetch returns the stored admin-level override for the fully-qualified name.
// It returns params.ErrOverrideNotFound when no override is persisted.
func (r *gormOverrideRepository) Fetch(ctx context.Context, name string) (string, error) {
	var model models.ParameterModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", params.ErrOverrideNotFound
		}
		return "", fmt.Errorf("failed to fetch parameter override: %w", err)
	}
	return model.Value, nil
}

// Store creates or updates the admin-level override for the fully-qualified name
func (r *gormOverrideRepository) Store(ctx context.Context, name, value string) error {
	var model models.ParameterModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model.FromDomain(params.Override{Name: name, Value: value})
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create parameter override: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to fetch parameter override: %w", err)
	default:
		model.Value = value
		if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update parameter override: %w", err)
		}
	}

	r.logger.Info("Stored override for ", name)
	return nil
}

// FetchForUser returns the stored override of the fully-qualified name for one user.
// It returns params.ErrOverrideNotFound when no override is persisted.
func (r *gormOverrideRepository) FetchForUser(ctx context.Context, userID, name string) (string, error) {
	var model models.UserParameterModel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", params.ErrOverrideNotFound
		}
		return "", fmt.Errorf("failed to fetch user parameter override: %w", err)
	}
	return model.Value, nil
}

// StoreForUser creates or updates the override of the fully-qualified name for one user
func (r *gormOverrideRepository) StoreForUser(ctx context.Context, userID, name, value string) error {
	var model models.UserParameterModel
	err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&model).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model.FromDomain(params.Override{UserID: userID, Name: name, Value: value})
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create user parameter override: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to fetch user parameter override: %w", err)
	default:
		model.Value = value
		if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update user parameter override: %w", err)
		}
	}

	r.logger.Info("Stored override of ", name, " for user ", userID)
	return nil
}

// List returns every admin-level override sorted by name
func (r *gormOverrideRepository) List(ctx context.Context) ([]params.Override, error) {
	var modelList []*models.ParameterModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list parameter overrides: %w", err)
	}

	overrides := make([]params.Override, len(modelList))
	for i, model := range modelList {
		overrides[i] = model.ToDomain()
	}
	return overrides, nil
}

// ListForUser returns every override of one user sorted by name
func (r *gormOverrideRepository) ListForUser(ctx context.Context, userID string) ([]params.Override, error) {
	var modelList []*models.UserParameterModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list user parameter overrides: %w", err)
	}

	overrides := make([]params.Override, len(modelList))
	for i, model := range modelList {
		overrides[i] = model.ToDomain()
	}
	return overrides, nil
}

// Delete removes the admin-level override for the fully-qualified name.
// It returns params.ErrOverrideNotFound when no override was persisted.
func (r *gormOverrideRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.ParameterModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete parameter override: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return params.ErrOverrideNotFound
	}

	r.logger.Info("Deleted override for ", name)
	return nil
}

// DeleteForUser removes the override of the fully-qualified name for one user.
// It returns params.ErrOverrideNotFound when no override was persisted.
func (r *gormOverrideRepository) DeleteForUser(ctx context.Context, userID, name string) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).Delete(&models.UserParameterModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user parameter override: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return params.ErrOverrideNotFound
	}

	r.logger.Info("Deleted override of ", name, " for user ", userID)
	return nil
}
