package config

import (
	"fmt"
	"strings"

	"meshnodes/internal/view"
	"meshnodes/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Validate checks the settings that can be checked without the command line.
// Output format and table style names are checked by the renderer.
func Validate(cfg MeshnodesConfig) error {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs.Add("logLevel", err.Error(), cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.Meshtastic.Binary) == "" {
		errs.Add("meshtastic.binary", "must not be empty", cfg.Meshtastic.Binary)
	}
	if cfg.Meshtastic.Timeout <= 0 {
		errs.Add("meshtastic.timeout", "must be positive", cfg.Meshtastic.Timeout)
	}
	if cfg.Prune.InactiveAfter <= 0 {
		errs.Add("prune.inactiveAfter", "must be positive", cfg.Prune.InactiveAfter)
	}
	if err := view.ValidateColumns(cfg.Output.Columns); err != nil {
		errs.Add("output.columns", err.Error(), cfg.Output.Columns)
	}
	if repo := cfg.Update.Repository; repo != "" && strings.Count(repo, "/") != 1 {
		errs.Add("update.repository", "must have the form owner/name", repo)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
