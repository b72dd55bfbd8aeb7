package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
// Field names in errors are the JSON names of the request body.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	// notblank only fails for strings made of whitespace; registration of a
	// static func cannot fail.
	_ = v.RegisterValidation("notblank", notBlank)

	return &RequestValidator{validate: v}
}

// Validate checks struct tags on i and reports the first failing field as
// errs.ValueIsInvalidError.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(), fieldRuleError(fe))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", err)
}

func fieldRuleError(fe validator.FieldError) error {
	if fe.Param() != "" {
		return fmt.Errorf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
	}
	return fmt.Errorf("failed on the '%s' rule", fe.Tag())
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
