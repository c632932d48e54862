package http

import (
	"fmt"
	"strings"

	"log-catalog/internal/shared/svcerrors"
	"log-catalog/internal/shared/validators"
)

// HTTP API errors
const (
	codeInvalidQuery = "API_1000"
)

// errInvalidQuery returns an error for path or query parameters that fail validation.
func errInvalidQuery(err error) *svcerrors.ServiceError {
	ve, ok := err.(validators.ValidationErrors)
	if !ok {
		return svcerrors.NewInvalidArgumentError(codeInvalidQuery, "invalid query parameters", err)
	}

	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		problems = append(problems, formatFieldError(fe))
	}
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, "invalid query parameters: "+strings.Join(problems, ", "), err)
}

func formatFieldError(fe validators.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "loglevel":
		return fmt.Sprintf("%s must be one of DEBUG, INFO, WARN, ERROR, FATAL", fe.Field())
	case "alphanum":
		return fmt.Sprintf("%s must be alphanumeric", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must match %q", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}
}
