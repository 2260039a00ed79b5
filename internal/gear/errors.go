package gear

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the sentinel every configuration-level
// failure wraps, so callers can errors.Is against it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError describes what part of a drivetrain configuration was
// rejected and why.
type ConfigError struct {
	Field  string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Detail)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

func configErr(field, format string, args ...any) error {
	return &ConfigError{Field: field, Detail: fmt.Sprintf(format, args...)}
}
