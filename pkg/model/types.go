package model

import "fmt"

// WidgetKind is the closed set of controls a field can resolve to.
type WidgetKind int

const (
	// KindAuto resolves to a concrete kind from the declared value type.
	KindAuto WidgetKind = iota
	// KindIgnore skips the field entirely.
	KindIgnore
	// KindField renders text/numeric/vector/colour/array editors.
	KindField
	// KindSlider renders a bounded numeric slider.
	KindSlider
	// KindToggle renders a boolean checkbox.
	KindToggle
	// KindToggleGroup renders every enum member as a mutually exclusive toggle.
	KindToggleGroup
	// KindPopupList renders an enum picker.
	KindPopupList
)

var widgetKindNames = map[WidgetKind]string{
	KindAuto:        "auto",
	KindIgnore:      "ignore",
	KindField:       "field",
	KindSlider:      "slider",
	KindToggle:      "toggle",
	KindToggleGroup: "togglegroup",
	KindPopupList:   "popuplist",
}

func (k WidgetKind) String() string {
	if name, ok := widgetKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("WidgetKind(%d)", int(k))
}

// ParseWidgetKind maps the textual kind used in tags and overlay files to a
// WidgetKind. Matching is exact on the lower-case names returned by String.
func ParseWidgetKind(raw string) (WidgetKind, bool) {
	for kind, name := range widgetKindNames {
		if name == raw {
			return kind, true
		}
	}
	switch raw {
	case "popup", "select":
		return KindPopupList, true
	case "text":
		return KindField, true
	}
	return KindAuto, false
}

// FieldMask selects which undecorated fields are eligible for auto-binding.
type FieldMask int

const (
	// MaskAny accepts every field.
	MaskAny FieldMask = 0
	// MaskPublic accepts exported fields.
	MaskPublic FieldMask = 1
	// MaskSerialized accepts fields carrying an explicit serialization marker.
	MaskSerialized FieldMask = 2
	// MaskSkipNotSerialized rejects fields explicitly excluded from serialization.
	MaskSkipNotSerialized FieldMask = 4
	// MaskOnlyDrawAttr rejects every field without a DrawSpec.
	MaskOnlyDrawAttr FieldMask = 8
)

// Has reports whether every bit of flag is set on m.
func (m FieldMask) Has(flag FieldMask) bool {
	return flag != 0 && m&flag == flag
}

func (m FieldMask) String() string {
	if m == MaskAny {
		return "any"
	}
	var out string
	for _, entry := range []struct {
		flag FieldMask
		name string
	}{
		{MaskPublic, "public"},
		{MaskSerialized, "serialized"},
		{MaskSkipNotSerialized, "skipnotserialized"},
		{MaskOnlyDrawAttr, "attronly"},
	} {
		if m.Has(entry.flag) {
			if out != "" {
				out += "|"
			}
			out += entry.name
		}
	}
	return out
}

// TypeKind classifies a declared value type for resolution and conversion.
type TypeKind int

const (
	TypeUnsupported TypeKind = iota
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeBool
	TypeString
	TypeEnum
	TypeVector2
	TypeVector3
	TypeVector4
	TypeColor
	TypeArray
	TypeComposite
	TypeOpaque
)

var typeKindNames = [...]string{
	TypeUnsupported: "unsupported",
	TypeInt:         "int",
	TypeLong:        "long",
	TypeFloat:       "float",
	TypeDouble:      "double",
	TypeBool:        "bool",
	TypeString:      "string",
	TypeEnum:        "enum",
	TypeVector2:     "vector2",
	TypeVector3:     "vector3",
	TypeVector4:     "vector4",
	TypeColor:       "color",
	TypeArray:       "array",
	TypeComposite:   "composite",
	TypeOpaque:      "opaque",
}

func (k TypeKind) String() string {
	if int(k) >= 0 && int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// EnumMember is a single named value of an enum type.
type EnumMember struct {
	Name  string
	Value int64
}

// ValueType describes the declared type of a field as seen by the engine.
type ValueType struct {
	// Name is the host's name for the type, used in errors.
	Name string
	Kind TypeKind
	// Bits is the storage width of numeric kinds (8, 16, 32, 64).
	Bits     int
	Unsigned bool
	// Elem describes array elements.
	Elem *ValueType
	// Enum lists members in declaration order.
	Enum  []EnumMember
	Flags bool
	// Describe yields the nested descriptor of composite kinds. It is lazy so
	// that self-referential types can be described.
	Describe func() (TypeDescriptor, error)
}

// IsNumeric reports whether the kind is one of int, long, float or double.
func (t ValueType) IsNumeric() bool {
	switch t.Kind {
	case TypeInt, TypeLong, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// IsFloat reports whether the kind is float or double.
func (t ValueType) IsFloat() bool {
	return t.Kind == TypeFloat || t.Kind == TypeDouble
}

// IsPrimitive reports whether the kind may be referenced from a visibility
// condition.
func (t ValueType) IsPrimitive() bool {
	return t.IsNumeric() || t.Kind == TypeBool || t.Kind == TypeString
}

// IsSpecial reports whether the kind is a multi-component value rendered as a
// leaf even though it is structurally composite.
func (t ValueType) IsSpecial() bool {
	switch t.Kind {
	case TypeVector2, TypeVector3, TypeVector4, TypeColor:
		return true
	}
	return false
}

// EnumIndex returns the position of value in t.Enum, or -1.
func (t ValueType) EnumIndex(value int64) int {
	for i, member := range t.Enum {
		if member.Value == value {
			return i
		}
	}
	return -1
}

// EnumNames returns the member names in declaration order.
func (t ValueType) EnumNames() []string {
	out := make([]string, len(t.Enum))
	for i, member := range t.Enum {
		out[i] = member.Name
	}
	return out
}

func (t ValueType) String() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Kind == TypeArray && t.Elem != nil {
		return "[]" + t.Elem.String()
	}
	return t.Kind.String()
}
