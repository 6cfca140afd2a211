// Package fieldbind binds the fields of Go values to immediate-mode widgets.
// It re-exports the common entry points of the pkg/ subpackages.
package fieldbind

import (
	"github.com/goliatone/go-fieldbind/pkg/bind"
	"github.com/goliatone/go-fieldbind/pkg/hostreflect"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/overlay"
	"github.com/goliatone/go-fieldbind/pkg/walker"
)

// Binder aliases bind.Binder.
type Binder = bind.Binder

// Option aliases bind.Option.
type Option = bind.Option

// FieldMask aliases model.FieldMask.
type FieldMask = model.FieldMask

// PlanEntry aliases walker.PlanEntry.
type PlanEntry = walker.PlanEntry

// Field masks.
const (
	MaskAny               = model.MaskAny
	MaskPublic            = model.MaskPublic
	MaskSerialized        = model.MaskSerialized
	MaskSkipNotSerialized = model.MaskSkipNotSerialized
	MaskOnlyDrawAttr      = model.MaskOnlyDrawAttr
)

// New constructs a Binder.
func New(options ...Option) *Binder {
	return bind.New(options...)
}

// NewHost returns the reflection host, decorated with store when it holds
// any overlays.
func NewHost(store *overlay.Store) model.Host {
	if store.Empty() {
		return hostreflect.New()
	}
	return hostreflect.New(hostreflect.WithDecorator(store))
}

// LoadOverlays loads overlay files below dir. An empty dir yields an empty
// store.
func LoadOverlays(dir string) (*overlay.Store, error) {
	return overlay.LoadDir(dir)
}

// WithOverlays is an Option binding through a host decorated with store.
func WithOverlays(store *overlay.Store) Option {
	return bind.WithHost(NewHost(store))
}

// ParseMask parses "|" separated mask names such as "public|serialized".
func ParseMask(raw string) (FieldMask, error) {
	return hostreflect.ParseMask(raw)
}

// Plan describes instance through host and lists the widget every selected
// field resolves to. A nil host uses plain struct tags.
func Plan(host model.Host, instance any, mask FieldMask) ([]PlanEntry, error) {
	if host == nil {
		host = hostreflect.New()
	}
	desc, err := host.Describe(instance)
	if err != nil {
		return nil, err
	}
	return walker.New(nil).Plan(desc, mask)
}
