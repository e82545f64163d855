package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/ptree/internal/filter"
	"github.com/Iron-Ham/ptree/internal/logging"
	"github.com/Iron-Ham/ptree/internal/render"
	"github.com/Iron-Ham/ptree/internal/tree"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "render.width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	for i, l := range levels {
		levels[i] = strings.ToLower(l)
	}
	return levels
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateProc()...)
	errors = append(errors, c.validateTree()...)
	errors = append(errors, c.validateFilter()...)
	errors = append(errors, c.validateRender()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateProc() []ValidationError {
	if strings.TrimSpace(c.Proc.Root) == "" {
		return []ValidationError{{
			Field:   "proc.root",
			Value:   c.Proc.Root,
			Message: "must not be empty",
		}}
	}
	return nil
}

func (c *Config) validateTree() []ValidationError {
	if _, err := tree.ParseRootPolicy(c.Tree.RootPolicy); err != nil {
		return []ValidationError{oneOf("tree.root_policy", c.Tree.RootPolicy, tree.ValidRootPolicies())}
	}
	return nil
}

func (c *Config) validateFilter() []ValidationError {
	if c.Filter.Mode != "" && !slices.Contains(filter.ValidModes(), c.Filter.Mode) {
		return []ValidationError{oneOf("filter.mode", c.Filter.Mode, filter.ValidModes())}
	}
	return nil
}

// validateRender validates the RenderConfig
func (c *Config) validateRender() []ValidationError {
	var errors []ValidationError

	// Zero means detect
	if c.Render.Width < 0 {
		errors = append(errors, ValidationError{
			Field:   "render.width",
			Value:   c.Render.Width,
			Message: "must be non-negative",
		})
	}

	if c.Render.Color != "" && !slices.Contains(render.ValidColorModes(), c.Render.Color) {
		errors = append(errors, oneOf("render.color", c.Render.Color, render.ValidColorModes()))
	}

	if c.Render.Output != "" && !slices.Contains(render.ValidOutputs(), c.Render.Output) {
		errors = append(errors, oneOf("render.output", c.Render.Output, render.ValidOutputs()))
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, oneOf("logging.level", c.Logging.Level, ValidLogLevels()))
	}

	if c.Logging.Format != "" && !slices.Contains(logging.ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, oneOf("logging.format", c.Logging.Format, logging.ValidFormats()))
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

func oneOf(field string, value any, valid []string) ValidationError {
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(valid, ", ")),
	}
}
