package mcp

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// Year bounds accepted by the kmayear tag.
const (
	minYear = 1900
	maxYear = 2100
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON argument names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "kmadatetime", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDateTime(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "kmadate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "kmayear", func(fl validator.FieldLevel) bool {
		y := fl.Field().Int()
		return y >= minYear && y <= maxYear
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateInput checks tool arguments and reports the first failure as a
// kma.ValidationError naming the argument.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &kma.ValidationError{Param: fe.Field(), Reason: reason(fe)}
	}
	return err
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "kmadatetime":
		return fmt.Sprintf("want YYYYMMDDHHmm, got %q", fe.Value())
	case "kmadate":
		return fmt.Sprintf("want YYYYMMDD, got %q", fe.Value())
	case "kmayear":
		return fmt.Sprintf("want a year between %d and %d, got %v", minYear, maxYear, fe.Value())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("want one of %s, got %v", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return "failed " + fe.Tag()
	}
}
