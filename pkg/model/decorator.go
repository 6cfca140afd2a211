package model

// Decorator contributes extra annotations to a type or field after the host
// has read the declared ones. An empty field name addresses the type itself.
type Decorator interface {
	Decorate(typeName, fieldName string, declared Annotations) Annotations
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(typeName, fieldName string, declared Annotations) Annotations

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(typeName, fieldName string, declared Annotations) Annotations {
	return fn(typeName, fieldName, declared)
}
