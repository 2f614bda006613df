package application

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// configValidator returns the package validator with the custom rules
// registered. It is built once.
var configValidator = sync.OnceValues(func() (*validator.Validate, error) {
	v := validator.New()
	if err := registerCustomValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return v, nil
})

// registerCustomValidators adds the semantic validators used by struct tags
// in this package.
func registerCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("bcp47", validateBCP47); err != nil {
		return fmt.Errorf("failed to register bcp47 validator: %w", err)
	}
	if err := v.RegisterValidation("questionid", validateQuestionID); err != nil {
		return fmt.Errorf("failed to register questionid validator: %w", err)
	}
	return nil
}

// validateBCP47 accepts strings that parse as a BCP 47 language tag.
func validateBCP47(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	return err == nil
}

// validateQuestionID accepts non-empty ids without surrounding or embedded
// whitespace.
func validateQuestionID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return id != "" && !strings.ContainsFunc(id, unicode.IsSpace)
}
