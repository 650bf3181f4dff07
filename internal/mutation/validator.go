package mutation

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	apperrors "inventory-client/pkg/errors"

	"github.com/go-playground/validator/v10"
)

var allowedImportExtensions = map[string]bool{
	".csv":  true,
	".json": true,
}

// inputValidator checks user input before any request is sent.
type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &inputValidator{validate: v}
}

func (iv *inputValidator) Struct(value interface{}) *apperrors.StandardError {
	err := iv.validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return apperrors.NewValidationError(describe(fe), fe.Field())
	}
	return apperrors.NewValidationError(err.Error(), "")
}

func (iv *inputValidator) ID(name, value string) *apperrors.StandardError {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s is required", name), name)
	}
	return nil
}

func (iv *inputValidator) Import(filename string, r io.Reader) *apperrors.StandardError {
	if r == nil {
		return apperrors.NewValidationError("import file is required", "file")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImportExtensions[ext] {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported import file type %q", ext), "file")
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
