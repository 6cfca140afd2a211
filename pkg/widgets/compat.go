package widgets

import "github.com/goliatone/go-fieldbind/pkg/model"

// Compatible reports whether kind may render a value of type t.
func Compatible(t model.ValueType, kind model.WidgetKind) bool {
	switch kind {
	case model.KindAuto, model.KindIgnore:
		return true
	case model.KindField:
		return isFieldType(t)
	case model.KindSlider:
		return t.IsNumeric()
	case model.KindToggle:
		return t.Kind == model.TypeBool
	case model.KindToggleGroup, model.KindPopupList:
		return t.Kind == model.TypeEnum && !t.Flags
	}
	return false
}

// Check returns a configuration error naming t and kind when they are
// incompatible.
func Check(t model.ValueType, kind model.WidgetKind) error {
	if Compatible(t, kind) {
		return nil
	}
	if (kind == model.KindToggleGroup || kind == model.KindPopupList) && t.Kind == model.TypeEnum {
		return model.Configf("", "", "type %s/%s incompatible with flags enum", t, kind)
	}
	return model.Configf("", "", "type %s can't be drawn as %s", t, kind)
}

func isFieldType(t model.ValueType) bool {
	switch t.Kind {
	case model.TypeInt, model.TypeLong, model.TypeFloat, model.TypeDouble,
		model.TypeString, model.TypeVector2, model.TypeVector3, model.TypeVector4, model.TypeColor:
		return true
	case model.TypeArray:
		if t.Elem == nil {
			return false
		}
		return t.Elem.IsNumeric() || t.Elem.Kind == model.TypeString
	}
	return false
}

// isAutoFieldType narrows isFieldType to the types drawn as a field without an
// explicit kind. Only numeric arrays qualify.
func isAutoFieldType(t model.ValueType) bool {
	if t.Kind == model.TypeArray {
		return t.Elem != nil && t.Elem.IsNumeric()
	}
	return isFieldType(t)
}
