package model

import "math"

// Annotation is implemented by every metadata record a host can attach to a
// type or field. The set is closed.
type Annotation interface {
	annotation()
}

// DrawSpec is an explicit per-field override. When present it governs the
// field entirely and the selection mask is bypassed.
type DrawSpec struct {
	Kind   WidgetKind
	Label  string
	Width  int
	Height int
	Min    float64
	Max    float64
	// Precision is the number of fractional digits kept for float fields,
	// rounding half to even. Negative disables rounding.
	Precision int
	MaxLength int
	// VisibleOn and InvisibleOn hold "FieldName|Value" conditions. VisibleOn
	// wins when both are set.
	VisibleOn   string
	InvisibleOn string
	Box         bool
	Collapsible bool
	Vertical    bool
}

// DefaultPrecision is applied to float fields unless a DrawSpec overrides it.
const DefaultPrecision = 2

// NewDrawSpec returns a DrawSpec with unbounded range, default precision and
// unlimited text length.
func NewDrawSpec() DrawSpec {
	return DrawSpec{
		Kind:      KindAuto,
		Min:       -math.MaxFloat64,
		Max:       math.MaxFloat64,
		Precision: DefaultPrecision,
		MaxLength: math.MaxInt,
	}
}

// FieldSelectionPolicy sets the selection mask of a type, or overrides the
// mask a nested composite field inherits.
type FieldSelectionPolicy struct {
	Mask FieldMask
}

// RangeHint promotes an undecorated numeric field to a slider.
type RangeHint struct {
	Min float64
	Max float64
}

// Header emits a bold heading before the field.
type Header struct {
	Text string
}

// Space emits vertical spacing before the field.
type Space struct {
	Height int
}

// Horizontal lays out a nested composite horizontally.
type Horizontal struct{}

func (DrawSpec) annotation()             {}
func (FieldSelectionPolicy) annotation() {}
func (RangeHint) annotation()            {}
func (Header) annotation()               {}
func (Space) annotation()                {}
func (Horizontal) annotation()           {}

// Annotations is an ordered annotation list with typed lookups. When a kind
// appears more than once the last entry wins.
type Annotations []Annotation

// DrawSpec returns the last DrawSpec in the list.
func (a Annotations) DrawSpec() (DrawSpec, bool) {
	var (
		out   DrawSpec
		found bool
	)
	for _, entry := range a {
		if spec, ok := entry.(DrawSpec); ok {
			out, found = spec, true
		}
	}
	return out, found
}

// Policy returns the last FieldSelectionPolicy in the list.
func (a Annotations) Policy() (FieldSelectionPolicy, bool) {
	var (
		out   FieldSelectionPolicy
		found bool
	)
	for _, entry := range a {
		if policy, ok := entry.(FieldSelectionPolicy); ok {
			out, found = policy, true
		}
	}
	return out, found
}

// Range returns the first RangeHint in the list.
func (a Annotations) Range() (RangeHint, bool) {
	for _, entry := range a {
		if hint, ok := entry.(RangeHint); ok {
			return hint, true
		}
	}
	return RangeHint{}, false
}

// Headers returns every Header in declaration order.
func (a Annotations) Headers() []Header {
	var out []Header
	for _, entry := range a {
		if header, ok := entry.(Header); ok {
			out = append(out, header)
		}
	}
	return out
}

// Spaces returns every Space in declaration order.
func (a Annotations) Spaces() []Space {
	var out []Space
	for _, entry := range a {
		if space, ok := entry.(Space); ok {
			out = append(out, space)
		}
	}
	return out
}

// Horizontal reports whether a Horizontal marker is present.
func (a Annotations) Horizontal() bool {
	for _, entry := range a {
		if _, ok := entry.(Horizontal); ok {
			return true
		}
	}
	return false
}
