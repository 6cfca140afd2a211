package widgets

import (
	"strconv"

	"github.com/goliatone/go-fieldbind/pkg/convert"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
)

// Standalone helpers draw a single value without a container. Each returns
// whether the value changed; the Func variants report the new value through
// onChange instead and reject a nil callback.

var intType = model.ValueType{Name: "int", Kind: model.TypeLong, Bits: strconv.IntSize}

func helperControl(label string) ui.Control {
	return ui.Control{
		ID:     model.RootIdentity.Child("", label),
		Path:   label,
		Label:  label,
		Width:  ui.DefaultFieldWidth,
		Height: ui.DefaultHeight,
	}
}

// IntField edits an int. Empty or malformed input commits zero.
func IntField(tk ui.Toolkit, label string, value *int) bool {
	old := *value
	entered := tk.TextField(helperControl(label), strconv.Itoa(old), 0)
	parsed := convert.FromText(entered, intType, convert.Unbounded())
	*value = int(parsed.(int64))
	return *value != old
}

// IntFieldFunc is IntField reporting through onChange.
func IntFieldFunc(tk ui.Toolkit, label string, value int, onChange func(int)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if IntField(tk, label, &value) {
		onChange(value)
	}
	return nil
}

// FloatField edits a float32 with six fractional digits.
func FloatField(tk ui.Toolkit, label string, value *float32) bool {
	old := *value
	entered := tk.TextField(helperControl(label), convert.FormatComponent(old), 0)
	*value = convert.ParseComponent(entered)
	return *value != old
}

// FloatFieldFunc is FloatField reporting through onChange.
func FloatFieldFunc(tk ui.Toolkit, label string, value float32, onChange func(float32)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if FloatField(tk, label, &value) {
		onChange(value)
	}
	return nil
}

// TextField edits a single line of text.
func TextField(tk ui.Toolkit, label string, value *string) bool {
	old := *value
	*value = tk.TextField(helperControl(label), old, 0)
	return *value != old
}

// TextFieldFunc is TextField reporting through onChange.
func TextFieldFunc(tk ui.Toolkit, label string, value string, onChange func(string)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if TextField(tk, label, &value) {
		onChange(value)
	}
	return nil
}

// TextArea edits multi-line text.
func TextArea(tk ui.Toolkit, label string, value *string) bool {
	old := *value
	*value = tk.TextArea(helperControl(label), old)
	return *value != old
}

// TextAreaFunc is TextArea reporting through onChange.
func TextAreaFunc(tk ui.Toolkit, label string, value string, onChange func(string)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if TextArea(tk, label, &value) {
		onChange(value)
	}
	return nil
}

// FloatMultiField edits values in place, one field per label. values and
// labels must be non-empty and of equal length.
func FloatMultiField(tk ui.Toolkit, label string, values []float32, labels []string) (bool, error) {
	switch {
	case len(values) == 0:
		return false, model.Configf("", label, "values are required")
	case len(labels) == 0:
		return false, model.Configf("", label, "labels are required")
	case len(values) != len(labels):
		return false, model.Configf("", label, "%d values but %d labels", len(values), len(labels))
	}
	result, changed := editFloats(tk, helperControl(label), values, labels)
	copy(values, result)
	return changed, nil
}

// FloatMultiFieldFunc is FloatMultiField reporting a fresh slice through
// onChange.
func FloatMultiFieldFunc(tk ui.Toolkit, label string, values []float32, labels []string, onChange func([]float32)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	edited := append([]float32(nil), values...)
	changed, err := FloatMultiField(tk, label, edited, labels)
	if err != nil {
		return err
	}
	if changed {
		onChange(edited)
	}
	return nil
}

func editVector[V any](tk ui.Toolkit, label string, kind model.TypeKind, value *V) bool {
	components, labels, _ := convert.Components(*value)
	result, changed := editFloats(tk, helperControl(label), components, labels)
	if changed {
		*value = convert.FromComponents(kind, result).(V)
	}
	return changed
}

func editVectorFunc[V any](tk ui.Toolkit, label string, kind model.TypeKind, value V, onChange func(V)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if editVector(tk, label, kind, &value) {
		onChange(value)
	}
	return nil
}

// Vector2Field edits the x and y components.
func Vector2Field(tk ui.Toolkit, label string, value *model.Vector2) bool {
	return editVector(tk, label, model.TypeVector2, value)
}

// Vector2FieldFunc is Vector2Field reporting through onChange.
func Vector2FieldFunc(tk ui.Toolkit, label string, value model.Vector2, onChange func(model.Vector2)) error {
	return editVectorFunc(tk, label, model.TypeVector2, value, onChange)
}

// Vector3Field edits the x, y and z components.
func Vector3Field(tk ui.Toolkit, label string, value *model.Vector3) bool {
	return editVector(tk, label, model.TypeVector3, value)
}

// Vector3FieldFunc is Vector3Field reporting through onChange.
func Vector3FieldFunc(tk ui.Toolkit, label string, value model.Vector3, onChange func(model.Vector3)) error {
	return editVectorFunc(tk, label, model.TypeVector3, value, onChange)
}

// Vector4Field edits all four components.
func Vector4Field(tk ui.Toolkit, label string, value *model.Vector4) bool {
	return editVector(tk, label, model.TypeVector4, value)
}

// Vector4FieldFunc is Vector4Field reporting through onChange.
func Vector4FieldFunc(tk ui.Toolkit, label string, value model.Vector4, onChange func(model.Vector4)) error {
	return editVectorFunc(tk, label, model.TypeVector4, value, onChange)
}

// ColorField edits the r, g, b and a channels.
func ColorField(tk ui.Toolkit, label string, value *model.Color) bool {
	return editVector(tk, label, model.TypeColor, value)
}

// ColorFieldFunc is ColorField reporting through onChange.
func ColorFieldFunc(tk ui.Toolkit, label string, value model.Color, onChange func(model.Color)) error {
	return editVectorFunc(tk, label, model.TypeColor, value, onChange)
}

// ToggleGroup picks one of options as mutually exclusive toggles.
func ToggleGroup(tk ui.Toolkit, label string, selected *int, options []string) bool {
	old := *selected
	result := tk.ToggleGroup(helperControl(label), old, options)
	if result < 0 || result >= len(options) {
		return false
	}
	*selected = result
	return result != old
}

// ToggleGroupFunc is ToggleGroup reporting through onChange.
func ToggleGroupFunc(tk ui.Toolkit, label string, selected int, options []string, onChange func(int)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if ToggleGroup(tk, label, &selected, options) {
		onChange(selected)
	}
	return nil
}

// PopupList picks one of options from a popup.
func PopupList(tk ui.Toolkit, label string, selected *int, options []string) bool {
	old := *selected
	result := tk.Popup(helperControl(label), old, options)
	if result < 0 || result >= len(options) {
		return false
	}
	*selected = result
	return result != old
}

// PopupListFunc is PopupList reporting through onChange.
func PopupListFunc(tk ui.Toolkit, label string, selected int, options []string, onChange func(int)) error {
	if onChange == nil {
		return errNilCallback(label)
	}
	if PopupList(tk, label, &selected, options) {
		onChange(selected)
	}
	return nil
}

func errNilCallback(label string) error {
	return model.Configf("", label, "onChange callback is required")
}
