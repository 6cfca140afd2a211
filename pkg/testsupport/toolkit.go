package testsupport

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-fieldbind/pkg/ui"
)

// Call records one toolkit invocation. Value holds the value the engine passed
// in; Result holds what the toolkit returned.
type Call struct {
	Op     string `json:"op"`
	Path   string `json:"path,omitempty"`
	Label  string `json:"label,omitempty"`
	Value  string `json:"value,omitempty"`
	Result string `json:"result,omitempty"`
}

func (c Call) String() string {
	out := c.Op
	if c.Path != "" {
		out += " " + c.Path
	}
	if c.Label != "" {
		out += " " + strconv.Quote(c.Label)
	}
	switch {
	case c.Value == "":
	case c.Path == "" && c.Label == "":
		out += " " + c.Value
	default:
		out += " =" + c.Value
	}
	if c.Result != "" && c.Result != c.Value {
		out += " ->" + c.Result
	}
	return out
}

// Toolkit is a scripted ui.Toolkit. Inputs are keyed by Control.Path and
// delivered once; unscripted widgets echo the value they were given, which
// is what an untouched immediate-mode control does.
type Toolkit struct {
	texts   map[string]string
	sliders map[string]float64
	toggles map[string]bool
	choices map[string]int
	clicks  map[string]int

	Calls []Call
}

// NewToolkit returns an empty scripted toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{
		texts:   map[string]string{},
		sliders: map[string]float64{},
		toggles: map[string]bool{},
		choices: map[string]int{},
		clicks:  map[string]int{},
	}
}

var _ ui.Toolkit = (*Toolkit)(nil)

// Type scripts the text entered into the field or text area at path.
func (k *Toolkit) Type(path, text string) *Toolkit {
	k.texts[path] = text
	return k
}

// Slide scripts a slider position.
func (k *Toolkit) Slide(path string, value float64) *Toolkit {
	k.sliders[path] = value
	return k
}

// Check scripts a toggle state.
func (k *Toolkit) Check(path string, value bool) *Toolkit {
	k.toggles[path] = value
	return k
}

// Choose scripts the option index picked from a toggle group or popup.
func (k *Toolkit) Choose(path string, index int) *Toolkit {
	k.choices[path] = index
	return k
}

// Click scripts a button press. Repeated calls queue more presses, one per
// pass.
func (k *Toolkit) Click(path string) *Toolkit {
	k.clicks[path]++
	return k
}

// Pending lists scripted inputs that were never consumed, usually
// because the targeted control was not drawn.
func (k *Toolkit) Pending() []string {
	var out []string
	for path := range k.texts {
		out = append(out, "text "+path)
	}
	for path := range k.sliders {
		out = append(out, "slider "+path)
	}
	for path := range k.toggles {
		out = append(out, "toggle "+path)
	}
	for path := range k.choices {
		out = append(out, "choice "+path)
	}
	for path, n := range k.clicks {
		if n > 0 {
			out = append(out, "click "+path)
		}
	}
	return out
}

// Reset clears the recorded calls, keeping any unconsumed script.
func (k *Toolkit) Reset() {
	k.Calls = nil
}

// Ops returns the recorded calls rendered as strings.
func (k *Toolkit) Ops() []string {
	out := make([]string, len(k.Calls))
	for i, call := range k.Calls {
		out[i] = call.String()
	}
	return out
}

// Drawn returns the paths of every widget drawn with op, in order.
func (k *Toolkit) Drawn(op string) []string {
	var out []string
	for _, call := range k.Calls {
		if call.Op == op {
			out = append(out, call.Path)
		}
	}
	return out
}

// Labels returns the text of every Label call.
func (k *Toolkit) Labels() []string {
	var out []string
	for _, call := range k.Calls {
		if call.Op == "label" {
			out = append(out, call.Label)
		}
	}
	return out
}

func (k *Toolkit) Label(text string) {
	k.Calls = append(k.Calls, Call{Op: "label", Label: text})
}

func (k *Toolkit) Header(text string) {
	k.Calls = append(k.Calls, Call{Op: "header", Label: text})
}

func (k *Toolkit) Space(height int) {
	k.Calls = append(k.Calls, Call{Op: "space", Value: strconv.Itoa(height)})
}

func (k *Toolkit) Begin(dir ui.Direction, box bool) {
	value := "vertical"
	if dir == ui.Horizontal {
		value = "horizontal"
	}
	if box {
		value += ",box"
	}
	k.Calls = append(k.Calls, Call{Op: "begin", Value: value})
}

func (k *Toolkit) End() {
	k.Calls = append(k.Calls, Call{Op: "end"})
}

func (k *Toolkit) TextField(c ui.Control, text string, maxLength int) string {
	out := text
	if scripted, ok := k.texts[c.Path]; ok {
		delete(k.texts, c.Path)
		out = scripted
	}
	k.record("textfield", c, text, out)
	return out
}

func (k *Toolkit) TextArea(c ui.Control, text string) string {
	out := text
	if scripted, ok := k.texts[c.Path]; ok {
		delete(k.texts, c.Path)
		out = scripted
	}
	k.record("textarea", c, text, out)
	return out
}

func (k *Toolkit) Slider(c ui.Control, value, min, max float64) float64 {
	out := value
	if scripted, ok := k.sliders[c.Path]; ok {
		delete(k.sliders, c.Path)
		out = scripted
	}
	k.record("slider", c, formatFloat(value), formatFloat(out))
	return out
}

func (k *Toolkit) Toggle(c ui.Control, value bool) bool {
	out := value
	if scripted, ok := k.toggles[c.Path]; ok {
		delete(k.toggles, c.Path)
		out = scripted
	}
	k.record("toggle", c, strconv.FormatBool(value), strconv.FormatBool(out))
	return out
}

func (k *Toolkit) ToggleGroup(c ui.Control, selected int, options []string) int {
	out := k.choose(c.Path, selected)
	k.record("togglegroup", c, option(options, selected), option(options, out))
	return out
}

func (k *Toolkit) Popup(c ui.Control, selected int, options []string) int {
	out := k.choose(c.Path, selected)
	k.record("popup", c, option(options, selected), option(options, out))
	return out
}

func (k *Toolkit) Button(c ui.Control) bool {
	pressed := k.clicks[c.Path] > 0
	if pressed {
		k.clicks[c.Path]--
		if k.clicks[c.Path] == 0 {
			delete(k.clicks, c.Path)
		}
	}
	result := ""
	if pressed {
		result = "click"
	}
	k.Calls = append(k.Calls, Call{Op: "button", Path: c.Path, Label: c.Label, Result: result})
	return pressed
}

func (k *Toolkit) choose(path string, selected int) int {
	if scripted, ok := k.choices[path]; ok {
		delete(k.choices, path)
		return scripted
	}
	return selected
}

func (k *Toolkit) record(op string, c ui.Control, value, result string) {
	k.Calls = append(k.Calls, Call{Op: op, Path: c.Path, Label: c.Label, Value: value, Result: result})
}

func option(options []string, index int) string {
	if index >= 0 && index < len(options) {
		return options[index]
	}
	return fmt.Sprintf("#%d", index)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
