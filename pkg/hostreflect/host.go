package hostreflect

import (
	"reflect"
	"sync"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

// Host describes Go structs through reflection.
type Host struct {
	decorator model.Decorator
	cache     sync.Map // reflect.Type -> describeResult
}

type describeResult struct {
	desc *typeDescriptor
	err  error
}

// Option configures a Host.
type Option func(*Host)

// WithDecorator merges extra annotations into every described type and field.
func WithDecorator(decorator model.Decorator) Option {
	return func(h *Host) {
		h.decorator = decorator
	}
}

// New constructs a reflection host.
func New(options ...Option) *Host {
	h := &Host{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

var _ model.Host = (*Host)(nil)

// Describe returns the descriptor of instance, which must be a non-nil
// pointer to a struct.
func (h *Host) Describe(instance any) (model.TypeDescriptor, error) {
	rv := reflect.ValueOf(instance)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, model.Configf("", "", "container must be a non-nil pointer to a struct, got %T", instance)
	}
	desc, err := h.DescribeType(rv.Elem().Type())
	if err != nil {
		return nil, err
	}
	return desc, nil
}

// DescribeType returns the descriptor of a struct type. Results, including
// tag errors, are cached per type.
func (h *Host) DescribeType(t reflect.Type) (model.TypeDescriptor, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, model.Configf(t.String(), "", "only struct types can be described")
	}
	if cached, ok := h.cache.Load(t); ok {
		res := cached.(describeResult)
		if res.err != nil {
			return nil, res.err
		}
		return res.desc, nil
	}

	desc, err := h.build(t)
	h.cache.Store(t, describeResult{desc: desc, err: err})
	if err != nil {
		return nil, err
	}
	return desc, nil
}

func (h *Host) build(t reflect.Type) (*typeDescriptor, error) {
	desc := &typeDescriptor{
		name:        typeName(t),
		qualified:   qualifiedName(t),
		annotations: typeAnnotations(t),
	}
	if h.decorator != nil {
		desc.annotations = h.decorator.Decorate(desc.name, "", desc.annotations)
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		anns, err := parseTags(sf.Tag)
		if err != nil {
			return nil, model.Locate(err, desc.name, sf.Name)
		}
		if h.decorator != nil {
			anns = h.decorator.Decorate(desc.name, sf.Name, anns)
		}
		desc.fields = append(desc.fields, &fieldDescriptor{
			name:          sf.Name,
			index:         sf.Index,
			rtype:         sf.Type,
			vtype:         h.classify(sf.Type),
			annotations:   anns,
			serialized:    isSerialized(sf.Tag),
			notSerialized: isNotSerialized(sf.Tag),
		})
	}
	return desc, nil
}

// typeName is the short package-qualified name overlays are keyed by.
func typeName(t reflect.Type) string {
	return t.String()
}

func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func typeAnnotations(t reflect.Type) model.Annotations {
	var anns model.Annotations
	zero := reflect.New(t)
	if selector, ok := zero.Interface().(model.FieldSelector); ok {
		anns = append(anns, model.FieldSelectionPolicy{Mask: selector.DrawFields()})
	}
	if layout, ok := zero.Interface().(model.HorizontalLayout); ok && layout.DrawHorizontal() {
		anns = append(anns, model.Horizontal{})
	}
	return anns
}

type typeDescriptor struct {
	name        string
	qualified   string
	annotations model.Annotations
	fields      []*fieldDescriptor
}

func (d *typeDescriptor) Name() string { return d.name }

func (d *typeDescriptor) QualifiedName() string { return d.qualified }

func (d *typeDescriptor) Annotations() model.Annotations { return d.annotations }

func (d *typeDescriptor) Fields() []model.FieldDescriptor {
	out := make([]model.FieldDescriptor, len(d.fields))
	for i, field := range d.fields {
		out[i] = field
	}
	return out
}
