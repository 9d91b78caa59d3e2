package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "ukdtimers/internal/errors"
)

var validate = validator.New()

// validateInput runs struct tag validation and reports failures as
// ErrInvalidInput.
func validateInput(in interface{}) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}
