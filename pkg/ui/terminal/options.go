package terminal

import (
	"context"
	"io"
)

// Option customises the terminal toolkit.
type Option func(*Toolkit)

// WithDriver injects a custom prompt driver (useful for tests).
func WithDriver(driver PromptDriver) Option {
	return func(t *Toolkit) {
		if driver != nil {
			t.driver = driver
		}
	}
}

// WithOutput sets the writer labels, headers and rules are printed to.
func WithOutput(out io.Writer) Option {
	return func(t *Toolkit) {
		if out != nil {
			t.out = out
		}
	}
}

// WithContext sets the context passed to every prompt.
func WithContext(ctx context.Context) Option {
	return func(t *Toolkit) {
		if ctx != nil {
			t.ctx = ctx
		}
	}
}

// WithStyles overrides the lipgloss styles.
func WithStyles(styles Styles) Option {
	return func(t *Toolkit) {
		t.styles = styles
	}
}

// WithWidth fixes the width of box rules instead of probing the output.
func WithWidth(width int) Option {
	return func(t *Toolkit) {
		if width > 0 {
			t.width = width
		}
	}
}
