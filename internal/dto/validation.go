package dto

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/SscSPs/staycost/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so messages match what the user typed into.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// fieldMessages are the user-facing messages per external field name.
var fieldMessages = map[string]string{
	"name":       "Property name is required",
	"totalPrice": "Please enter a valid price",
	"currency":   "Currency must be EUR or THB",
	"totalDays":  "Please enter valid number of days",
}

// Validate checks the request against its struct tags.
// It returns *apperrors.ValidationError listing every failed field.
func (r CreateAccommodationRequest) Validate() error {
	return validateStruct(r)
}

// Validate checks the conversion input with the same field rules and messages as
// CreateAccommodationRequest.
func (r ConvertRequest) Validate() error {
	return validateStruct(r)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &apperrors.ValidationError{Fields: make([]apperrors.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "failed on the '" + fe.Tag() + "' rule"
		}
		out.Fields = append(out.Fields, apperrors.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
