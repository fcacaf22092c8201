package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// UserAccount entity
type UserAccount struct {
	ID              string    `validate:"required,uuid4"`
	Email           string    `validate:"required,email"`
	Mailbox         bool      `validate:"-"`
	DateTimeCreated time.Time `validate:"required"`
}

// Identity returns the stable identifier user-level overrides are keyed by
func (u *UserAccount) Identity() string {
	return u.ID
}

// HasMailbox reports whether the account owns a mailbox
func (u *UserAccount) HasMailbox() bool {
	return u.Mailbox
}

// Validate for validating UserAccount struct
func (u *UserAccount) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
