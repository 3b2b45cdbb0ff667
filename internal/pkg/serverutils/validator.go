package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tavor118/notes/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into
// a field-keyed validation error for the error middleware.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Internal("validation", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required."
		case "len":
			fields[name] = fmt.Sprintf("Must be exactly %s characters.", fe.Param())
		case "min":
			fields[name] = fmt.Sprintf("Must be at least %s characters.", fe.Param())
		case "max":
			fields[name] = fmt.Sprintf("Must be at most %s characters.", fe.Param())
		case "email":
			fields[name] = "Must be a valid email address."
		default:
			fields[name] = "Invalid value."
		}
	}

	return apperror.Validation(fields)
}
