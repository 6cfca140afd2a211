package hostreflect

import (
	"reflect"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

type fieldDescriptor struct {
	name          string
	index         []int
	rtype         reflect.Type
	vtype         model.ValueType
	annotations   model.Annotations
	serialized    bool
	notSerialized bool
}

func (f *fieldDescriptor) Name() string                   { return f.name }
func (f *fieldDescriptor) Type() model.ValueType          { return f.vtype }
func (f *fieldDescriptor) Annotations() model.Annotations { return f.annotations }
func (f *fieldDescriptor) Exported() bool                 { return true }
func (f *fieldDescriptor) Serialized() bool               { return f.serialized }
func (f *fieldDescriptor) NotSerialized() bool            { return f.notSerialized }

// Get returns the normalised field value: int64 or uint64 for integers and
// enums, float64 for floats, []any for slices, and a pointer for composites
// so nested edits land in place. A nil composite pointer yields nil.
func (f *fieldDescriptor) Get(instance any) any {
	rv, ok := f.locate(instance)
	if !ok {
		return nil
	}
	return normalize(rv, f.vtype)
}

// Set stores a normalised value. Values of the wrong shape are ignored.
func (f *fieldDescriptor) Set(instance any, value any) {
	rv, ok := f.locate(instance)
	if !ok || !rv.CanSet() {
		return
	}
	assign(rv, f.vtype, value)
}

func (f *fieldDescriptor) locate(instance any) (reflect.Value, bool) {
	rv := reflect.ValueOf(instance)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, false
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	field, err := rv.FieldByIndexErr(f.index)
	if err != nil {
		return reflect.Value{}, false
	}
	return field, true
}

func normalize(rv reflect.Value, t model.ValueType) any {
	switch t.Kind {
	case model.TypeInt, model.TypeLong, model.TypeEnum:
		if isUnsigned(rv.Kind()) {
			if t.Kind == model.TypeEnum {
				return int64(rv.Uint())
			}
			return rv.Uint()
		}
		return rv.Int()
	case model.TypeFloat, model.TypeDouble:
		return rv.Float()
	case model.TypeBool:
		return rv.Bool()
	case model.TypeString:
		return rv.String()
	case model.TypeVector2, model.TypeVector3, model.TypeVector4, model.TypeColor:
		return rv.Interface()
	case model.TypeArray:
		out := make([]any, rv.Len())
		for i := range out {
			if t.Elem != nil {
				out[i] = normalize(rv.Index(i), *t.Elem)
			}
		}
		return out
	case model.TypeComposite:
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil
			}
			return rv.Interface()
		}
		if rv.CanAddr() {
			return rv.Addr().Interface()
		}
		return nil
	case model.TypeOpaque:
		if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil
			}
			return rv.Interface()
		}
		if rv.CanAddr() {
			if opaque, ok := rv.Addr().Interface().(model.Opaque); ok {
				return opaque
			}
		}
		return rv.Interface()
	}
	if rv.CanInterface() {
		return rv.Interface()
	}
	return nil
}

func assign(rv reflect.Value, t model.ValueType, value any) {
	switch t.Kind {
	case model.TypeInt, model.TypeLong, model.TypeEnum:
		assignInteger(rv, value)
	case model.TypeFloat, model.TypeDouble:
		if v, ok := value.(float64); ok {
			rv.SetFloat(v)
		}
	case model.TypeBool:
		if v, ok := value.(bool); ok {
			rv.SetBool(v)
		}
	case model.TypeString:
		if v, ok := value.(string); ok {
			rv.SetString(v)
		}
	case model.TypeVector2, model.TypeVector3, model.TypeVector4, model.TypeColor:
		in := reflect.ValueOf(value)
		if in.IsValid() && in.Type() == rv.Type() {
			rv.Set(in)
		}
	case model.TypeArray:
		items, ok := value.([]any)
		if !ok || t.Elem == nil {
			return
		}
		slice := reflect.MakeSlice(rv.Type(), len(items), len(items))
		for i, item := range items {
			assign(slice.Index(i), *t.Elem, item)
		}
		rv.Set(slice)
	case model.TypeComposite:
		assignComposite(rv, value)
	}
}

func assignInteger(rv reflect.Value, value any) {
	var (
		signed   int64
		unsigned uint64
	)
	switch v := value.(type) {
	case int64:
		signed, unsigned = v, uint64(v)
	case uint64:
		signed, unsigned = int64(v), v
	default:
		return
	}
	if isUnsigned(rv.Kind()) {
		rv.SetUint(unsigned)
		return
	}
	rv.SetInt(signed)
}

func assignComposite(rv reflect.Value, value any) {
	in := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if !in.IsValid() {
			rv.Set(reflect.Zero(rv.Type()))
			return
		}
		if in.Type() == rv.Type() {
			rv.Set(in)
		}
		return
	}
	if !in.IsValid() || in.Kind() != reflect.Pointer || in.IsNil() || in.Elem().Type() != rv.Type() {
		return
	}
	if rv.CanAddr() && rv.Addr().Pointer() == in.Pointer() {
		return
	}
	rv.Set(in.Elem())
}
