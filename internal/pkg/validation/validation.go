package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request struct against its validate tags and returns a
// single human-readable message for the first failing field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", field)
		case "min":
			return fmt.Errorf("%s must be at least %s characters", field, fe.Param())
		case "max":
			return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
		default:
			return fmt.Errorf("%s is invalid", field)
		}
	}
	return err
}
