package hostreflect

import (
	"reflect"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

var (
	vector2Type    = reflect.TypeOf(model.Vector2{})
	vector3Type    = reflect.TypeOf(model.Vector3{})
	vector4Type    = reflect.TypeOf(model.Vector4{})
	colorType      = reflect.TypeOf(model.Color{})
	opaqueType     = reflect.TypeOf((*model.Opaque)(nil)).Elem()
	enumeratedType = reflect.TypeOf((*model.Enumerated)(nil)).Elem()
)

// classify maps a Go type onto the engine's type kinds. Anything it cannot
// express is TypeUnsupported, which Auto resolution ignores.
func (h *Host) classify(t reflect.Type) model.ValueType {
	vt := model.ValueType{Name: t.String()}

	if t.Implements(opaqueType) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(opaqueType)) {
		vt.Kind = model.TypeOpaque
		return vt
	}

	switch t {
	case vector2Type:
		vt.Kind = model.TypeVector2
		return vt
	case vector3Type:
		vt.Kind = model.TypeVector3
		return vt
	case vector4Type:
		vt.Kind = model.TypeVector4
		return vt
	case colorType:
		vt.Kind = model.TypeColor
		return vt
	}

	if isInteger(t.Kind()) && t.Implements(enumeratedType) {
		zero := reflect.Zero(t).Interface()
		vt.Kind = model.TypeEnum
		vt.Bits = t.Bits()
		vt.Unsigned = isUnsigned(t.Kind())
		vt.Enum = zero.(model.Enumerated).EnumMembers()
		if flags, ok := zero.(model.FlagsEnum); ok {
			vt.Flags = flags.EnumFlags()
		}
		return vt
	}

	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		vt.Kind, vt.Bits = model.TypeInt, t.Bits()
	case reflect.Int, reflect.Int64:
		vt.Kind, vt.Bits = model.TypeLong, t.Bits()
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		vt.Kind, vt.Bits, vt.Unsigned = model.TypeInt, t.Bits(), true
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		vt.Kind, vt.Bits, vt.Unsigned = model.TypeLong, t.Bits(), true
	case reflect.Float32:
		vt.Kind, vt.Bits = model.TypeFloat, 32
	case reflect.Float64:
		vt.Kind, vt.Bits = model.TypeDouble, 64
	case reflect.Bool:
		vt.Kind = model.TypeBool
	case reflect.String:
		vt.Kind = model.TypeString
	case reflect.Slice:
		elem := h.classify(t.Elem())
		vt.Kind = model.TypeArray
		vt.Elem = &elem
	case reflect.Struct:
		vt.Kind = model.TypeComposite
		vt.Describe = h.describer(t)
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct && !isSpecialType(t.Elem()) {
			vt.Kind = model.TypeComposite
			vt.Describe = h.describer(t.Elem())
		}
	}
	return vt
}

func (h *Host) describer(t reflect.Type) func() (model.TypeDescriptor, error) {
	return func() (model.TypeDescriptor, error) {
		return h.DescribeType(t)
	}
}

func isSpecialType(t reflect.Type) bool {
	switch t {
	case vector2Type, vector3Type, vector4Type, colorType:
		return true
	}
	return false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return isUnsigned(k)
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
