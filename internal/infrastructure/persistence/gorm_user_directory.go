package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence/models"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

type gormUserDirectory struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserDirectory creates a new GORM-based Directory implementation
func NewGormUserDirectory(db *gorm.DB, logger logger.Logger) (identity.Directory, error) {
	return &gormUserDirectory{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserDirectory) Create(ctx context.Context, account *identity.UserAccount) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserAccountModel{}
	model.FromDomain(account)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user account: %w", err)
	}

	r.logger.Info("Created user account with id ", account.ID)
	return nil
}

func (r *gormUserDirectory) GetByID(ctx context.Context, userID string) (*identity.UserAccount, error) {
	var model models.UserAccountModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user account: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserDirectory) List(ctx context.Context) ([]*identity.UserAccount, error) {
	var modelList []*models.UserAccountModel
	if err := r.db.WithContext(ctx).Order("email").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list user accounts: %w", err)
	}

	accounts := make([]*identity.UserAccount, len(modelList))
	for i, model := range modelList {
		accounts[i] = model.ToDomain()
	}
	return accounts, nil
}
