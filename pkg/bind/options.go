package bind

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbind/pkg/collapse"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
	"github.com/goliatone/go-fieldbind/pkg/visibility"
	"github.com/goliatone/go-fieldbind/pkg/widgets"
)

// Option configures a Binder.
type Option func(*Binder)

// WithToolkit sets the widget primitives. A Binder without a toolkit returns
// a configuration error from every pass.
func WithToolkit(toolkit ui.Toolkit) Option {
	return func(b *Binder) {
		b.toolkit = toolkit
	}
}

// WithHost replaces the reflection host. Defaults to hostreflect.New().
func WithHost(host model.Host) Option {
	return func(b *Binder) {
		if host != nil {
			b.host = host
		}
	}
}

// WithCollapseStore isolates collapse state from the process-wide store.
func WithCollapseStore(store collapse.Store) Option {
	return func(b *Binder) {
		if store != nil {
			b.collapse = store
		}
	}
}

// WithLogger sets the logger used for pass diagnostics and swallowed
// callback failures.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithVisibility replaces the condition evaluator.
func WithVisibility(eval visibility.Evaluator) Option {
	return func(b *Binder) {
		if eval != nil {
			b.visibility = eval
		}
	}
}

// WithResolver replaces the widget resolver, e.g. one with extra Auto
// defaults registered.
func WithResolver(resolver *widgets.Resolver) Option {
	return func(b *Binder) {
		if resolver != nil {
			b.resolver = resolver
		}
	}
}

// WithMaxDepth bounds composite nesting.
func WithMaxDepth(depth int) Option {
	return func(b *Binder) {
		if depth > 0 {
			b.maxDepth = depth
		}
	}
}
