package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Messages maps a JSON field name to the message reported when that field fails validation.
type Messages map[string]string

// Struct validates v and returns an InvalidInput error carrying the message of the first failing field.
func Struct(v interface{}, messages Messages) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return fmt.Errorf("validate %T: %w", v, err)
	}
	if msg, ok := messages[ve[0].Field()]; ok {
		return common.InvalidInput(msg)
	}
	for _, msg := range ParseError(err) {
		return common.InvalidInput(msg)
	}
	return common.InvalidInput("Invalid input")
}

func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil {
		errors["error"] = err.Error()
	}
	return errors
}
