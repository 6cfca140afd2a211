// Package walker enumerates the fields of a container, decides which of them
// are drawn and with which widget, recurses into nested composites, and
// writes edits back through the host's field descriptors.
package walker

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbind/pkg/collapse"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
	"github.com/goliatone/go-fieldbind/pkg/visibility"
	"github.com/goliatone/go-fieldbind/pkg/widgets"
)

// DefaultMaxDepth bounds composite descent.
const DefaultMaxDepth = 32

// Labels shown instead of walking a composite value.
const (
	NilLabel   = "(none)"
	CycleLabel = "(cycle)"
)

// Walker draws containers through a toolkit. A Walker carries no per-pass
// state and may be reused across passes; it is not safe for concurrent use
// when its collapse store is shared.
type Walker struct {
	toolkit    ui.Toolkit
	resolver   *widgets.Resolver
	visibility visibility.Evaluator
	collapse   collapse.Store
	logger     *zap.Logger
	maxDepth   int
}

// Option configures a Walker.
type Option func(*Walker)

// WithResolver replaces the widget resolver.
func WithResolver(resolver *widgets.Resolver) Option {
	return func(w *Walker) {
		if resolver != nil {
			w.resolver = resolver
		}
	}
}

// WithVisibility replaces the condition evaluator.
func WithVisibility(eval visibility.Evaluator) Option {
	return func(w *Walker) {
		if eval != nil {
			w.visibility = eval
		}
	}
}

// WithCollapseStore replaces the process-wide collapse store.
func WithCollapseStore(store collapse.Store) Option {
	return func(w *Walker) {
		if store != nil {
			w.collapse = store
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithMaxDepth bounds composite descent. Non-positive values keep the
// default.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// New constructs a Walker drawing through toolkit.
func New(toolkit ui.Toolkit, options ...Option) *Walker {
	w := &Walker{
		toolkit:    toolkit,
		resolver:   widgets.NewResolver(),
		visibility: visibility.Default(),
		collapse:   collapse.Default(),
		logger:     zap.NewNop(),
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Walk draws every eligible field of container, described by desc, and
// reports whether any field was edited. inherited is the selection mask used
// when the type declares none; seed namespaces the identities of the pass.
// A configuration error aborts the pass; edits committed before it remain.
func (w *Walker) Walk(container any, desc model.TypeDescriptor, inherited model.FieldMask, seed model.Identity) (bool, error) {
	if w.toolkit == nil {
		return false, model.Configf(desc.Name(), "", "no toolkit configured")
	}
	p := &pass{walker: w}
	return p.walk(frame{
		container: container,
		desc:      desc,
		mask:      inherited,
		seed:      seed,
	})
}

// WalkField draws the field called name with spec in place of its declared
// DrawSpec. The selection mask does not apply; an Ignore spec draws nothing.
func (w *Walker) WalkField(container any, desc model.TypeDescriptor, name string, spec model.DrawSpec, seed model.Identity) (bool, error) {
	if w.toolkit == nil {
		return false, model.Configf(desc.Name(), name, "no toolkit configured")
	}
	for _, field := range desc.Fields() {
		if field.Name() != name {
			continue
		}
		if spec.Kind == model.KindIgnore {
			return false, nil
		}
		mask := model.MaskAny
		if policy, ok := desc.Annotations().Policy(); ok {
			mask = policy.Mask
		}
		p := &pass{walker: w, ancestors: []any{container}}
		changed, err := p.draw(frame{container: container, desc: desc, mask: mask, seed: seed}, field, spec, true)
		if err != nil {
			return changed, model.Locate(err, desc.Name(), name)
		}
		return changed, nil
	}
	return false, model.Configf(desc.Name(), name, "no such field")
}

// frame is one container on the descent path.
type frame struct {
	container any
	desc      model.TypeDescriptor
	mask      model.FieldMask
	seed      model.Identity
	path      string
	depth     int
}

func (f frame) fieldPath(name string) string {
	if f.path == "" {
		return name
	}
	return f.path + "." + name
}

type pass struct {
	walker    *Walker
	ancestors []any
}

func (p *pass) walk(f frame) (bool, error) {
	mask := f.mask
	if policy, ok := f.desc.Annotations().Policy(); ok {
		mask = policy.Mask
	}
	f.mask = mask

	p.ancestors = append(p.ancestors, f.container)
	defer func() { p.ancestors = p.ancestors[:len(p.ancestors)-1] }()

	changed := false
	for _, field := range f.desc.Fields() {
		edited, err := p.field(f, field)
		if edited {
			changed = true
		}
		if err != nil {
			return changed, model.Locate(err, f.desc.Name(), field.Name())
		}
	}
	return changed, nil
}

// onPath reports whether value is a container already being walked.
func (p *pass) onPath(value any) bool {
	if value == nil || !reflect.TypeOf(value).Comparable() {
		return false
	}
	for _, ancestor := range p.ancestors {
		if ancestor != nil && reflect.TypeOf(ancestor) == reflect.TypeOf(value) && ancestor == value {
			return true
		}
	}
	return false
}
