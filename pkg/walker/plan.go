package walker

import (
	"github.com/goliatone/go-fieldbind/pkg/model"
)

// PlanEntry describes how one field would be drawn, independent of any
// instance. Conditional fields are listed with their condition.
type PlanEntry struct {
	Path        string           `json:"path" yaml:"path"`
	Label       string           `json:"label" yaml:"label"`
	Type        string           `json:"type" yaml:"type"`
	Kind        model.WidgetKind `json:"-" yaml:"-"`
	Widget      string           `json:"widget" yaml:"widget"`
	VisibleOn   string           `json:"visibleOn,omitempty" yaml:"visibleOn,omitempty"`
	InvisibleOn string           `json:"invisibleOn,omitempty" yaml:"invisibleOn,omitempty"`
	Collapsible bool             `json:"collapsible,omitempty" yaml:"collapsible,omitempty"`
}

// Plan lists the fields of desc that a pass with mask would consider, in
// drawing order, resolving widget kinds without a toolkit. Composite entries
// use the widget name "group"; self-referential types are listed once.
func (w *Walker) Plan(desc model.TypeDescriptor, mask model.FieldMask) ([]PlanEntry, error) {
	var out []PlanEntry
	err := w.plan(desc, mask, "", map[string]bool{}, 0, &out)
	return out, err
}

func (w *Walker) plan(desc model.TypeDescriptor, mask model.FieldMask, prefix string, open map[string]bool, depth int, out *[]PlanEntry) error {
	if policy, ok := desc.Annotations().Policy(); ok {
		mask = policy.Mask
	}
	open[model.TypeKey(desc)] = true
	defer delete(open, model.TypeKey(desc))

	f := frame{path: prefix}
	for _, field := range desc.Fields() {
		spec, _, drawn := effectiveSpec(field, mask)
		if !drawn {
			continue
		}
		t := field.Type()
		entry := PlanEntry{
			Path:        f.fieldPath(field.Name()),
			Label:       labelOf(field, spec),
			Type:        t.String(),
			VisibleOn:   spec.VisibleOn,
			InvisibleOn: spec.InvisibleOn,
			Collapsible: spec.Collapsible,
		}

		switch t.Kind {
		case model.TypeComposite:
			entry.Widget = "group"
			*out = append(*out, entry)
			if t.Describe == nil || depth+1 > w.maxDepth {
				continue
			}
			nested, err := t.Describe()
			if err != nil {
				return model.Locate(err, desc.Name(), field.Name())
			}
			if open[model.TypeKey(nested)] {
				continue
			}
			nestedMask := mask
			if policy, ok := field.Annotations().Policy(); ok {
				nestedMask = policy.Mask
			}
			if err := w.plan(nested, nestedMask, entry.Path, open, depth+1, out); err != nil {
				return err
			}
			continue
		case model.TypeOpaque:
			entry.Widget = "label"
			*out = append(*out, entry)
			continue
		}

		kind, err := w.resolver.Resolve(t, spec.Kind)
		if err != nil {
			return model.Locate(err, desc.Name(), field.Name())
		}
		if kind == model.KindIgnore {
			continue
		}
		entry.Kind = kind
		entry.Widget = kind.String()
		*out = append(*out, entry)
	}
	return nil
}
