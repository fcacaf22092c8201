package models

import (
	"github.com/param-vault/param-vault/internal/domain/params"
)

// ParameterModel is the GORM database model for admin-level overrides
// (infrastructure concern)
type ParameterModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Value string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (ParameterModel) TableName() string {
	return "parameters"
}

// ToDomain converts GORM model to domain record
func (m *ParameterModel) ToDomain() params.Override {
	return params.Override{
		Name:  m.Name,
		Value: m.Value,
	}
}

// FromDomain converts domain record to GORM model
func (m *ParameterModel) FromDomain(o params.Override) {
	m.Name = o.Name
	m.Value = o.Value
}
