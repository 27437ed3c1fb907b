// Package validator adapts go-playground validation to Echo's
// Validator interface.
package validator

import (
	domainerrors "medifind/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground validator for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags on the bound input. Validation
// failures surface as a missing-fields error so every handler rejects
// bad input the same way.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage(err.Error())
	}

	return nil
}
