package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validator defines the interface for validation operations
type Validator interface {
	ValidateStruct(s any) map[string]string
}

type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their json name
// and understands the "ulid" tag used on catalog identifiers.
func NewValidator() Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("ulid", func(fl validator.FieldLevel) bool {
		_, err := ulid.ParseStrict(fl.Field().String())
		return err == nil
	})

	return &validatorImpl{
		validate: validate,
	}
}

// ValidateStruct validates a struct and returns field-specific errors keyed by json field name
func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return map[string]string{"_": err.Error()}
	}

	validationErrors := make(map[string]string, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		validationErrors[fieldErr.Field()] = formatValidationError(fieldErr, prettifyFieldName(fieldErr.Field()))
	}

	return validationErrors
}

func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "required_without":
		return fieldName + " is required when " + prettifyFieldName(strings.ToLower(err.Param())) + " is empty"
	case "email":
		return fieldName + " must be a valid email address"
	case "ulid":
		return fieldName + " must be a valid identifier"
	case "min":
		if err.Kind() == reflect.Slice {
			return fieldName + " must contain at least " + err.Param() + " item(s)"
		}
		return fieldName + " must be at least " + err.Param() + " characters long"
	case "max":
		return fieldName + " must be at most " + err.Param() + " characters long"
	case "numeric":
		return fieldName + " must be a numeric value"
	case "gt":
		return fieldName + " must be greater than " + err.Param()
	case "gte":
		return fieldName + " must be greater than or equal to " + err.Param()
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	default:
		return fieldName + " is invalid"
	}
}

// prettifyFieldName turns "supplier_product_id" or "supplierProductID" into "Supplier Product Id"
func prettifyFieldName(field string) string {
	var result []rune
	for i, r := range field {
		switch {
		case r == '_':
			result = append(result, ' ')
			continue
		case i > 0 && r >= 'A' && r <= 'Z' && field[i-1] >= 'a' && field[i-1] <= 'z':
			result = append(result, ' ')
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}
