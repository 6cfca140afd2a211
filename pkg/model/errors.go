package model

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigError through errors.Is.
var ErrConfiguration = errors.New("fieldbind: configuration error")

// ConfigError reports a programming mistake in the annotated data model:
// malformed annotations, incompatible widget/type pairs, bad visibility
// conditions. It aborts the current pass.
type ConfigError struct {
	Type   string
	Field  string
	Reason string
}

// Configf builds a ConfigError for typeName.fieldName.
func Configf(typeName, fieldName, format string, args ...any) *ConfigError {
	return &ConfigError{
		Type:   typeName,
		Field:  fieldName,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ConfigError) Error() string {
	switch {
	case e.Type != "" && e.Field != "":
		return fmt.Sprintf("fieldbind: %s.%s: %s", e.Type, e.Field, e.Reason)
	case e.Type != "":
		return fmt.Sprintf("fieldbind: %s: %s", e.Type, e.Reason)
	default:
		return "fieldbind: " + e.Reason
	}
}

// Is reports ErrConfiguration equivalence.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// IsConfigError reports whether err carries a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// Locate fills the type and field of a ConfigError that was raised without
// them. Other errors are returned unchanged.
func Locate(err error, typeName, fieldName string) error {
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		return err
	}
	if cfg.Type == "" {
		cfg.Type = typeName
	}
	if cfg.Field == "" {
		cfg.Field = fieldName
	}
	return err
}
