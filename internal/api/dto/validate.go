package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request payload against its struct tags and converts
// failures into a validation error carrying a per-field issue list.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	issues := make([]map[string]any, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issue := map[string]any{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		}
		if fe.Param() != "" {
			issue["param"] = fe.Param()
		}
		issues = append(issues, issue)
	}
	return apperrors.NewValidationError("invalid request body", map[string]any{"issues": issues})
}
