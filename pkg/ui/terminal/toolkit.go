// Package terminal implements ui.Toolkit on top of interactive terminal
// prompts. Each widget call asks one question; labels, headers and group
// rules are printed to the output writer.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-fieldbind/pkg/ui"
)

// Toolkit prompts for every widget. After the first prompt error (for
// example ErrAborted) it stops prompting and returns the values it was
// given, so the current pass still completes; the error is kept in Err.
type Toolkit struct {
	driver PromptDriver
	out    io.Writer
	ctx    context.Context
	styles Styles
	width  int

	groups []group
	indent int
	err    error
}

type group struct {
	box    bool
	indent bool
}

var _ ui.Toolkit = (*Toolkit)(nil)

// New builds a terminal toolkit. Without options it prompts on the process
// terminal and prints to stdout.
func New(options ...Option) *Toolkit {
	t := &Toolkit{
		driver: NewSurveyDriver(),
		out:    os.Stdout,
		ctx:    context.Background(),
		styles: DefaultStyles(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	if t.width == 0 {
		t.width = outputWidth(t.out)
	}
	return t
}

// Err returns the first prompt error, if any.
func (t *Toolkit) Err() error {
	return t.err
}

// Aborted reports whether the user interrupted a prompt.
func (t *Toolkit) Aborted() bool {
	return errors.Is(t.err, ErrAborted)
}

// Reset clears the recorded error and the layout stack so the toolkit can
// drive a new pass.
func (t *Toolkit) Reset() {
	t.err = nil
	t.groups = t.groups[:0]
	t.indent = 0
}

func (t *Toolkit) Label(text string) {
	t.println(t.styles.Label.Render(text))
}

func (t *Toolkit) Header(text string) {
	t.println(t.styles.Header.Render(text))
}

func (t *Toolkit) Space(height int) {
	lines := height / ui.DefaultHeight
	if lines < 1 {
		lines = 1
	}
	for i := 0; i < lines; i++ {
		fmt.Fprintln(t.out)
	}
}

// Begin indents vertical groups; horizontal groups print inline items one
// per line at the current depth.
func (t *Toolkit) Begin(dir ui.Direction, box bool) {
	if box {
		t.rule()
	}
	g := group{box: box, indent: dir == ui.Vertical}
	if g.indent {
		t.indent++
	}
	t.groups = append(t.groups, g)
}

func (t *Toolkit) End() {
	if len(t.groups) == 0 {
		return
	}
	g := t.groups[len(t.groups)-1]
	t.groups = t.groups[:len(t.groups)-1]
	if g.indent {
		t.indent--
	}
	if g.box {
		t.rule()
	}
}

func (t *Toolkit) TextField(c ui.Control, text string, maxLength int) string {
	if t.err != nil {
		return text
	}
	cfg := InputConfig{
		Message: t.message(c.Label),
		Default: text,
	}
	if maxLength > 0 {
		cfg.Help = fmt.Sprintf("at most %d characters", maxLength)
		cfg.Validator = func(s string) error {
			if utf8.RuneCountInString(s) > maxLength {
				return fmt.Errorf("longer than %d characters", maxLength)
			}
			return nil
		}
	}
	out, err := t.driver.Input(t.ctx, cfg)
	if err != nil {
		t.fail(err)
		return text
	}
	return out
}

func (t *Toolkit) TextArea(c ui.Control, text string) string {
	if t.err != nil {
		return text
	}
	out, err := t.driver.TextArea(t.ctx, TextAreaConfig{
		Message: t.message(c.Label),
		Default: text,
	})
	if err != nil {
		t.fail(err)
		return text
	}
	return out
}

// Slider asks for a number in [min, max]. Input outside the range is
// clamped; unparseable input keeps value.
func (t *Toolkit) Slider(c ui.Control, value, min, max float64) float64 {
	if t.err != nil {
		return value
	}
	out, err := t.driver.Input(t.ctx, InputConfig{
		Message: t.message(fmt.Sprintf("%s [%g..%g]", c.Label, min, max)),
		Default: strconv.FormatFloat(value, 'g', -1, 64),
		Validator: func(s string) error {
			if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return fmt.Errorf("not a number: %q", s)
			}
			return nil
		},
	})
	if err != nil {
		t.fail(err)
		return value
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return value
	}
	if parsed < min {
		return min
	}
	if parsed > max {
		return max
	}
	return parsed
}

func (t *Toolkit) Toggle(c ui.Control, value bool) bool {
	if t.err != nil {
		return value
	}
	out, err := t.driver.Confirm(t.ctx, ConfirmConfig{
		Message: t.message(c.Label),
		Default: value,
	})
	if err != nil {
		t.fail(err)
		return value
	}
	return out
}

func (t *Toolkit) ToggleGroup(c ui.Control, selected int, options []string) int {
	return t.choose(c, selected, options)
}

func (t *Toolkit) Popup(c ui.Control, selected int, options []string) int {
	return t.choose(c, selected, options)
}

// Button asks whether to press it; the default is no.
func (t *Toolkit) Button(c ui.Control) bool {
	if t.err != nil {
		return false
	}
	out, err := t.driver.Confirm(t.ctx, ConfirmConfig{
		Message: t.message(fmt.Sprintf("%s %s?", c.Label, buttonTarget(c.Path))),
	})
	if err != nil {
		t.fail(err)
		return false
	}
	return out
}

func (t *Toolkit) choose(c ui.Control, selected int, options []string) int {
	if t.err != nil || len(options) == 0 {
		return selected
	}
	idx, err := t.driver.Select(t.ctx, SelectConfig{
		Message:      t.message(c.Label),
		Options:      options,
		DefaultIndex: selected,
	})
	if err != nil {
		t.fail(err)
		return selected
	}
	if idx < 0 || idx >= len(options) {
		return selected
	}
	return idx
}

func (t *Toolkit) fail(err error) {
	if t.err == nil {
		t.err = fmt.Errorf("terminal: prompt: %w", err)
	}
}

func (t *Toolkit) message(label string) string {
	return t.prefix() + label
}

func (t *Toolkit) prefix() string {
	return strings.Repeat("  ", t.indent)
}

func (t *Toolkit) println(text string) {
	fmt.Fprintln(t.out, t.prefix()+text)
}

func (t *Toolkit) rule() {
	n := t.width - 2*t.indent
	if n < 1 {
		n = 1
	}
	t.println(t.styles.Rule.Render(strings.Repeat("─", n)))
}

// buttonTarget strips the action suffix from array button paths so
// "scores.+" reads as "scores".
func buttonTarget(path string) string {
	for _, suffix := range []string{".+", ".-"} {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix)
		}
	}
	return path
}
