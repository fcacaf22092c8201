package models

import (
	"time"

	"github.com/param-vault/param-vault/internal/domain/identity"
)

// UserAccountModel is the GORM database model for user accounts
// (infrastructure concern)
type UserAccountModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	Mailbox         bool      `gorm:"not null;default:false"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserAccountModel) TableName() string {
	return "user_accounts"
}

// ToDomain converts GORM model to domain entity
func (m *UserAccountModel) ToDomain() *identity.UserAccount {
	return &identity.UserAccount{
		ID:              m.ID,
		Email:           m.Email,
		Mailbox:         m.Mailbox,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserAccountModel) FromDomain(u *identity.UserAccount) {
	m.ID = u.ID
	m.Email = u.Email
	m.Mailbox = u.Mailbox
	m.DateTimeCreated = u.DateTimeCreated
}
