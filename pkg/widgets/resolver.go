package widgets

import (
	"sort"
	"sync"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

// Matcher decides whether an Auto field of type t defaults to a widget kind.
type Matcher func(t model.ValueType) bool

type rule struct {
	kind     model.WidgetKind
	priority int
	match    Matcher
	order    int
}

// Resolver maps a declared value type plus an explicit kind to a concrete
// WidgetKind. Explicit kinds are validated against the compatibility table;
// Auto walks the registered matchers, highest priority first, ties in
// registration order. When no matcher applies the field resolves to Ignore,
// so resolution is total.
type Resolver struct {
	mu    sync.RWMutex
	rules []rule
}

// NewResolver constructs a resolver with the built-in defaults registered.
func NewResolver() *Resolver {
	r := &Resolver{}
	r.registerBuiltins()
	return r
}

var defaultResolver = NewResolver()

// Resolve resolves with the package default resolver.
func Resolve(t model.ValueType, explicit model.WidgetKind) (model.WidgetKind, error) {
	return defaultResolver.Resolve(t, explicit)
}

// Register adds an Auto default. Only kinds compatible with the matched type
// are honoured; an incompatible match is skipped during resolution.
func (r *Resolver) Register(kind model.WidgetKind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	switch kind {
	case model.KindAuto, model.KindIgnore:
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the kind a field of type t renders as.
func (r *Resolver) Resolve(t model.ValueType, explicit model.WidgetKind) (model.WidgetKind, error) {
	switch explicit {
	case model.KindIgnore:
		return model.KindIgnore, nil
	case model.KindAuto:
	default:
		if err := Check(t, explicit); err != nil {
			return model.KindIgnore, err
		}
		return explicit, nil
	}

	if r == nil {
		return model.KindIgnore, nil
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(t) && Compatible(t, entry.kind) {
			return entry.kind, nil
		}
	}
	return model.KindIgnore, nil
}

func (r *Resolver) registerBuiltins() {
	r.Register(model.KindField, 90, isAutoFieldType)

	r.Register(model.KindToggle, 80, func(t model.ValueType) bool {
		return t.Kind == model.TypeBool
	})

	r.Register(model.KindPopupList, 70, func(t model.ValueType) bool {
		return t.Kind == model.TypeEnum && !t.Flags
	})
}
