package threshold

import "fmt"

// ValidationError reports malformed bound vectors at construction or a
// channel-count mismatch between a spec and an input image.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "threshold validation: " + e.Reason
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports malformed, missing, or empty threshold
// configuration, including a missing parameter-store entry.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "threshold config: " + e.Reason
}

func newConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
