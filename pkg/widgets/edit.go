package widgets

import (
	"math"

	"github.com/goliatone/go-fieldbind/pkg/convert"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
)

// The Edit functions draw one resolved leaf through a toolkit and return the
// committed normalised value plus whether the user edited it. They draw no
// surrounding layout; callers own grouping.

// EditText draws a text field for a scalar. Any entry that differs from the
// displayed text counts as an edit, even when it coerces back to the same
// value.
func EditText(tk ui.Toolkit, c ui.Control, value any, t model.ValueType, b convert.Bounds) (any, bool) {
	shown := convert.ToText(value, t, b.Precision)
	maxLength := 0
	if t.Kind == model.TypeString {
		maxLength = b.MaxLength
	}
	entered := tk.TextField(c, shown, maxLength)
	if entered == shown {
		return value, false
	}
	return convert.FromText(entered, t, b), true
}

// EditSlider draws a slider over the field bounds intersected with the type
// range.
func EditSlider(tk ui.Toolkit, c ui.Control, value any, t model.ValueType, b convert.Bounds) (any, bool) {
	lo, hi := convert.TypeRange(t)
	lo = math.Max(lo, b.Min)
	hi = math.Min(hi, b.Max)

	current := convert.ToFloat(value)
	result := tk.Slider(c, current, lo, hi)
	if result == current {
		return value, false
	}
	return convert.FromFloat(result, t, b), true
}

// EditToggle draws a checkbox.
func EditToggle(tk ui.Toolkit, c ui.Control, value bool) (bool, bool) {
	result := tk.Toggle(c, value)
	return result, result != value
}

// EditEnum draws an enum as a toggle group or a popup list. Selections
// outside the member list are ignored.
func EditEnum(tk ui.Toolkit, c ui.Control, value int64, t model.ValueType, kind model.WidgetKind) (int64, bool) {
	names := t.EnumNames()
	current := t.EnumIndex(value)

	var selected int
	if kind == model.KindToggleGroup {
		selected = tk.ToggleGroup(c, current, names)
	} else {
		selected = tk.Popup(c, current, names)
	}
	if selected == current || selected < 0 || selected >= len(t.Enum) {
		return value, false
	}
	return t.Enum[selected].Value, true
}

// EditComponents draws one text field per vector or colour component.
func EditComponents(tk ui.Toolkit, c ui.Control, value any, t model.ValueType) (any, bool) {
	components, labels, ok := convert.Components(value)
	if !ok {
		components, labels, _ = convert.Components(convert.Zero(t))
	}
	result, changed := editFloats(tk, c, components, labels)
	if !changed {
		return value, false
	}
	return convert.FromComponents(t.Kind, result), true
}

// EditArray draws the "+"/"-" row followed by one editor per element. "+"
// appends the zero element, "-" drops the last one; both flag an edit.
func EditArray(tk ui.Toolkit, c ui.Control, items []any, elem model.ValueType, b convert.Bounds) ([]any, bool) {
	changed := false

	tk.Begin(ui.Horizontal, false)
	if c.Label != "" {
		tk.Label(c.Label)
	}
	if tk.Button(c.Child("+", "+")) {
		items = append(items, convert.Zero(elem))
		changed = true
	}
	if tk.Button(c.Child("-", "-")) {
		if len(items) > 0 {
			items = items[:len(items)-1]
		}
		changed = true
	}
	tk.End()

	for i := range items {
		ec := c.Index(i)
		value, edited := EditText(tk, ec, items[i], elem, b)
		if edited {
			items[i] = value
			changed = true
		}
	}
	return items, changed
}

func editFloats(tk ui.Toolkit, c ui.Control, values []float32, labels []string) ([]float32, bool) {
	changed := false
	result := make([]float32, len(values))
	for i, v := range values {
		cc := c.Child(labels[i], labels[i])
		entered := tk.TextField(cc, convert.FormatComponent(v), 0)
		result[i] = convert.ParseComponent(entered)
		if result[i] != v {
			changed = true
		}
	}
	return result, changed
}
