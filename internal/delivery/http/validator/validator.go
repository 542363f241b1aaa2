// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "dealdigest/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for request struct validation.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator with struct-tag validation enabled.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error middleware renders a 400 envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
