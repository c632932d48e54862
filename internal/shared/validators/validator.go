package validators

import (
	"log-catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const tagLogLevel = "loglevel"

// New creates a new validator instance with the catalog's custom tags registered:
//
//	loglevel  value is one of DEBUG, INFO, WARN, ERROR, FATAL
func New() *Validate {
	validate := validator.New()
	// registration only fails for an empty tag or nil func
	_ = validate.RegisterValidation(tagLogLevel, isLogLevel)
	return validate
}

func isLogLevel(fl validator.FieldLevel) bool {
	return models.Level(fl.Field().String()).IsValid()
}
