package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance = validator.New(validator.WithRequiredStructEnabled())
)

func Validate(v any) error {
	return validatorInstance.Struct(v)
}

// ValidationMessage renders validator errors as "field: tag" pairs.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}
