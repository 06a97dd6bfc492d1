package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	tty   func() bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// withTTY overrides terminal detection.
func withTTY(fn func() bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.tty = fn
	}
}

// RunWithSpinner executes an action with a spinner on interactive terminals.
// Off a terminal the action runs directly. Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
		tty:   IsTTY,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.tty() {
		return action()
	}

	done := make(chan struct{})
	var actionErr error

	go func() {
		defer close(done)
		actionErr = action()
	}()

	s := spinner.New().Title(cfg.title).Context(ctx)

	spinnerErr := s.Action(func() {
		<-done
	}).Run()

	// The action always finishes before its result is read.
	<-done

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
