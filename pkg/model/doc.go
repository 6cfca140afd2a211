// Package model defines the vocabulary shared by every stage of the binding
// pipeline: the closed WidgetKind union, the FieldMask selection flags, the
// annotations a host attaches to types and fields (DrawSpec,
// FieldSelectionPolicy, RangeHint plus the Header/Space/Horizontal layout
// markers), and the capability interfaces (Host, TypeDescriptor,
// FieldDescriptor) through which the engine reads and writes field values.
//
// Values crossing the capability boundary are normalised: signed integers as
// int64, unsigned integers as uint64, floats as float64, enums as int64
// member values, vectors and colours as the structs declared here, arrays as
// []any of normalised elements. Host adapters convert back to the native
// representation on Set.
package model
