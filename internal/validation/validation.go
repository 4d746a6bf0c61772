package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/task-tracker-api/internal/errors"
)

// Messages maps "field.tag" (or just "field") to the message reported when
// that rule fails. Field names are the JSON names of the struct fields.
type Messages map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// notblank rejects strings that are empty after trimming whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(field.String()) != ""
	})

	return v
}

// Collect validates v and returns one FieldError per failed rule, in struct
// field order.
func Collect(v interface{}, messages Messages) ([]apierrors.FieldError, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("failed to validate input: %w", err)
	}

	fields := make([]apierrors.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, apierrors.FieldError{
			Field:   fe.Field(),
			Message: messages.lookup(fe),
		})
	}
	return fields, nil
}

// Struct validates v and returns a validation APIError when any rule fails
func Struct(v interface{}, messages Messages) error {
	fields, err := Collect(v, messages)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return apierrors.Validation("", fields...)
	}
	return nil
}

func (m Messages) lookup(fe validator.FieldError) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := m[fe.Field()]; ok {
		return msg
	}
	if fe.Tag() == "oneof" {
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
