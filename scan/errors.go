package scan

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a setting that prevents a scan from starting. It is
// always returned before any probe is dispatched.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configError(field string, format string, args ...interface{}) error {
	return &ConfigError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
