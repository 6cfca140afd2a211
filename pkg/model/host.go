package model

// Host resolves the descriptor of a container instance. Implementations wrap
// a concrete reflection facility; the engine never touches one directly.
type Host interface {
	Describe(instance any) (TypeDescriptor, error)
}

// TypeDescriptor describes a container type.
type TypeDescriptor interface {
	Name() string
	Annotations() Annotations
	// Fields returns the fields in declaration order.
	Fields() []FieldDescriptor
}

// QualifiedNamer is implemented by type descriptors whose Name is not unique
// across packages. The qualified name keys session state and cycle checks.
type QualifiedNamer interface {
	QualifiedName() string
}

// TypeKey returns the name that uniquely identifies desc.
func TypeKey(desc TypeDescriptor) string {
	if q, ok := desc.(QualifiedNamer); ok {
		if name := q.QualifiedName(); name != "" {
			return name
		}
	}
	return desc.Name()
}

// FieldDescriptor describes a single field of a container type and gives
// normalised access to its value on an instance.
type FieldDescriptor interface {
	Name() string
	Type() ValueType
	Annotations() Annotations
	// Exported reports public visibility.
	Exported() bool
	// Serialized reports an explicit serialization marker.
	Serialized() bool
	// NotSerialized reports an explicit exclusion from serialization.
	NotSerialized() bool
	Get(instance any) any
	Set(instance any, value any)
}

// FieldSelector is implemented by container types that declare their own
// selection mask.
type FieldSelector interface {
	DrawFields() FieldMask
}

// HorizontalLayout is implemented by composite types that always lay out
// horizontally.
type HorizontalLayout interface {
	DrawHorizontal() bool
}

// Enumerated is implemented by named integer types that behave as enums.
type Enumerated interface {
	EnumMembers() []EnumMember
}

// FlagsEnum marks an Enumerated type as a bit-flag set. Flag enums have no
// default widget.
type FlagsEnum interface {
	Enumerated
	EnumFlags() bool
}

// Opaque is implemented by host handles that are not user data. They render
// as a label carrying OpaqueName instead of being walked.
type Opaque interface {
	OpaqueName() string
}
