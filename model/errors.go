package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRequestConfiguration is matched by every error produced while
// validating a RequestBuilder.
var ErrInvalidRequestConfiguration = errors.New("invalid request configuration")

const (
	msgBaseURLEmpty       = "The baseUrl value cannot be null or empty."
	msgURIEmpty           = "The uri value cannot be null or empty."
	msgPathParamNotInURI  = "The path param {%s} was not aware in uri."
	msgPlaceholderNoParam = "The uri placeholder {%s} has no path param informed."
	msgMethodMandatory    = "The field method is mandatory."
	msgMethodUnavailable  = "The method is not available in request."
	msgBodyWithGet        = "The field body does not must be informed with GET method."
)

// ConfigurationError describes a single violation found by the builder.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidRequestConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidRequestConfiguration
}

func configErrorf(format string, args ...any) *ConfigurationError {
	if len(args) == 0 {
		return &ConfigurationError{Message: format}
	}
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}
