// Package ui declares the widget primitives the binding engine draws through.
// A Toolkit is immediate-mode: every call draws one control for the current
// frame and returns the value the user entered, or the value passed in when
// nothing changed. Layout decisions beyond grouping hints belong to the
// toolkit.
package ui

import (
	"strconv"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

// Direction is a grouping hint for Begin.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Control identifies the widget being drawn.
type Control struct {
	// ID is stable across frames for the same static field path.
	ID model.Identity
	// Path is the dotted field path, e.g. "stats.hp", "scores[1]" or
	// "scores.+" for array controls.
	Path   string
	Label  string
	Width  int
	Height int
}

// Child returns the control of a sub-widget such as a vector component or an
// array button. key extends the path; label is shown next to the widget.
func (c Control) Child(key, label string) Control {
	return Control{
		ID:     c.ID.Child("", key),
		Path:   c.Path + "." + key,
		Label:  label,
		Width:  c.Width,
		Height: c.Height,
	}
}

// Index returns the control of the i-th array element.
func (c Control) Index(i int) Control {
	key := "[" + strconv.Itoa(i) + "]"
	return Control{
		ID:     c.ID.Child("", key),
		Path:   c.Path + key,
		Label:  key,
		Width:  c.Width,
		Height: c.Height,
	}
}

// Toolkit draws widgets and reports edits.
type Toolkit interface {
	Label(text string)
	Header(text string)
	Space(height int)
	// Begin opens a layout group; box draws a frame around it.
	Begin(dir Direction, box bool)
	End()

	// TextField limits input to maxLength runes; non-positive is unlimited.
	TextField(c Control, text string, maxLength int) string
	TextArea(c Control, text string) string
	Slider(c Control, value, min, max float64) float64
	Toggle(c Control, value bool) bool
	// ToggleGroup and Popup return the selected option index.
	ToggleGroup(c Control, selected int, options []string) int
	Popup(c Control, selected int, options []string) int
	// Button reports a click.
	Button(c Control) bool
}

// Default layout sizes used when a DrawSpec leaves Width/Height unset.
const (
	DefaultFieldWidth  = 100
	DefaultSliderWidth = 200
	DefaultHeight      = 22
)
