package models

import (
	"github.com/param-vault/param-vault/internal/domain/params"
)

// UserParameterModel is the GORM database model for user-scoped overrides
// (infrastructure concern)
type UserParameterModel struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	UserID string `gorm:"not null;uniqueIndex:idx_user_parameters_user_name;type:varchar(255)"`
	Name   string `gorm:"not null;uniqueIndex:idx_user_parameters_user_name;type:varchar(255)"`
	Value  string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (UserParameterModel) TableName() string {
	return "user_parameters"
}

// ToDomain converts GORM model to domain record
func (m *UserParameterModel) ToDomain() params.Override {
	return params.Override{
		UserID: m.UserID,
		Name:   m.Name,
		Value:  m.Value,
	}
}

// FromDomain converts domain record to GORM model
func (m *UserParameterModel) FromDomain(o params.Override) {
	m.UserID = o.UserID
	m.Name = o.Name
	m.Value = o.Value
}
