package config

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/figlet"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Is makes ValidationErrors match oerrors.ErrValidation.
func (e ValidationErrors) Is(target error) bool {
	return target == oerrors.ErrValidation
}

// Validate checks ranges, profile names and the preset suffix. It reports
// every problem at once.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Width < 1 {
		errs = append(errs, ValidationError{Field: "width", Message: fmt.Sprintf("must be at least 1, got %d", cfg.Width)})
	}
	if cfg.Length < 0 {
		errs = append(errs, ValidationError{Field: "length", Message: fmt.Sprintf("must not be negative, got %d", cfg.Length)})
	}
	if cfg.Pad < 0 {
		errs = append(errs, ValidationError{Field: "pad", Message: fmt.Sprintf("must not be negative, got %d", cfg.Pad)})
	}
	if cfg.Bar == "" {
		errs = append(errs, ValidationError{Field: "bar", Message: "must not be empty"})
	}

	for _, p := range []struct{ field, name string }{
		{"figlet.header_profile", cfg.Figlet.HeaderProfile},
		{"figlet.footer_profile", cfg.Figlet.FooterProfile},
	} {
		if _, err := figlet.ParseProfile(p.name, p.field); err != nil {
			errs = append(errs, ValidationError{Field: p.field, Message: profileMessage(err)})
		}
	}

	if s := cfg.Preset.Suffix; s != "" && !strings.HasPrefix(s, ".") {
		errs = append(errs, ValidationError{Field: "preset.suffix", Message: fmt.Sprintf("must start with a dot, got %q", s)})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func profileMessage(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) && detail.Hint != "" {
		return detail.Message + " (" + detail.Hint + ")"
	}
	return err.Error()
}
