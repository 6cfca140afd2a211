package bind

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbind/pkg/collapse"
	"github.com/goliatone/go-fieldbind/pkg/hostreflect"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
	"github.com/goliatone/go-fieldbind/pkg/visibility"
	"github.com/goliatone/go-fieldbind/pkg/walker"
	"github.com/goliatone/go-fieldbind/pkg/widgets"
)

// Drawable is implemented by containers that react to their own edits.
type Drawable interface {
	OnChange() error
}

// CallbackError wraps a panic recovered from an onChange callback.
type CallbackError struct {
	Value      any
	StackTrace string
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("bind: onChange panicked: %v", e.Value)
}

// Binder runs binding passes. It is not safe for concurrent use.
type Binder struct {
	toolkit    ui.Toolkit
	host       model.Host
	collapse   collapse.Store
	logger     *zap.Logger
	visibility visibility.Evaluator
	resolver   *widgets.Resolver
	maxDepth   int

	walker *walker.Walker
}

// New constructs a Binder.
func New(options ...Option) *Binder {
	b := &Binder{
		host:       hostreflect.New(),
		collapse:   collapse.Default(),
		logger:     zap.NewNop(),
		visibility: visibility.Default(),
		resolver:   widgets.NewResolver(),
		maxDepth:   walker.DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.walker = walker.New(b.toolkit,
		walker.WithCollapseStore(b.collapse),
		walker.WithLogger(b.logger),
		walker.WithVisibility(b.visibility),
		walker.WithResolver(b.resolver),
		walker.WithMaxDepth(b.maxDepth),
	)
	return b
}

// Bind draws every field of container selected by mask and writes edits back
// in place. When anything changed onChange runs exactly once. seed
// namespaces collapse state so the same type can be bound at several places.
func (b *Binder) Bind(container any, mask model.FieldMask, seed model.Identity, onChange func() error) (bool, error) {
	changed, err := b.walk(container, mask, seed)
	if err != nil {
		return changed, err
	}
	if changed {
		b.notify(onChange)
	}
	return changed, nil
}

// BindAnnotated draws only fields carrying a DrawSpec.
func (b *Binder) BindAnnotated(container any, onChange func() error) (bool, error) {
	return b.Bind(container, model.MaskOnlyDrawAttr, model.RootIdentity, onChange)
}

// BindMasked draws the fields selected by mask.
func (b *Binder) BindMasked(container any, mask model.FieldMask, onChange func() error) (bool, error) {
	return b.Bind(container, mask, model.RootIdentity, onChange)
}

// Draw binds the annotated fields of d and reports edits to d.OnChange.
func (b *Binder) Draw(d Drawable) (bool, error) {
	return b.DrawUnique(d, model.RootIdentity)
}

// DrawUnique is Draw with an explicit identity seed.
func (b *Binder) DrawUnique(d Drawable, seed model.Identity) (bool, error) {
	if d == nil {
		return false, model.Configf("", "", "drawable is nil")
	}
	return b.Bind(d, model.MaskOnlyDrawAttr, seed, d.OnChange)
}

// DrawField draws the single field called name with spec, whatever the field
// declares. It is the runtime counterpart of a draw tag.
func (b *Binder) DrawField(container any, name string, spec model.DrawSpec) (bool, error) {
	desc, err := b.host.Describe(container)
	if err != nil {
		return false, err
	}
	changed, err := b.walker.WalkField(container, desc, name, spec, model.RootIdentity)
	if err != nil {
		b.logger.Debug("field draw aborted", zap.String("type", desc.Name()), zap.String("field", name), zap.Error(err))
	}
	return changed, err
}

// Commit walks a copy of *container and stores it back only when a field
// changed. On a configuration error *container is left untouched. Nested
// pointers are shared with the copy, so edits below them land in place.
func Commit[T any](b *Binder, container *T, mask model.FieldMask, seed model.Identity, onChange func() error) (bool, error) {
	if container == nil {
		return false, model.Configf(fmt.Sprintf("%T", container), "", "container is nil")
	}
	work := *container
	changed, err := b.walk(&work, mask, seed)
	if err != nil {
		return false, err
	}
	if changed {
		*container = work
		b.notify(onChange)
	}
	return changed, nil
}

func (b *Binder) walk(container any, mask model.FieldMask, seed model.Identity) (bool, error) {
	desc, err := b.host.Describe(container)
	if err != nil {
		b.logger.Debug("describe failed", zap.Error(err))
		return false, err
	}
	changed, err := b.walker.Walk(container, desc, mask, seed)
	if err != nil {
		b.logger.Debug("pass aborted", zap.String("type", desc.Name()), zap.Error(err))
		return changed, err
	}
	b.logger.Debug("pass complete", zap.String("type", desc.Name()), zap.Bool("changed", changed))
	return changed, nil
}

func (b *Binder) notify(onChange func() error) {
	if onChange == nil {
		return
	}
	if err := invoke(onChange); err != nil {
		b.logger.Error("onChange failed", zap.Error(err))
	}
}

func invoke(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Value: r, StackTrace: string(debug.Stack())}
		}
	}()
	return fn()
}
