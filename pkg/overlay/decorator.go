package overlay

import "github.com/goliatone/go-fieldbind/pkg/model"

var _ model.Decorator = (*Store)(nil)

// Decorate merges the overlay for typeName (and fieldName, when non-empty)
// into the declared annotations. Overlay DrawSpec, RangeHint and
// FieldSelectionPolicy entries replace declared ones; headers, spaces and
// the horizontal marker are added after the declared ones.
func (s *Store) Decorate(typeName, fieldName string, declared model.Annotations) model.Annotations {
	overlay, ok := s.Type(typeName)
	if !ok {
		return declared
	}
	entry := overlay.Annotations
	if fieldName != "" {
		entry, ok = overlay.Fields[fieldName]
		if !ok {
			return declared
		}
	}
	return entry.apply(declared)
}

func (e Entry) apply(declared model.Annotations) model.Annotations {
	_, replaceSpec := e.Annotations.DrawSpec()
	_, replaceRange := e.Annotations.Range()
	_, replacePolicy := e.Annotations.Policy()

	out := make(model.Annotations, 0, len(declared)+len(e.Annotations)+1)
	for _, ann := range declared {
		switch ann.(type) {
		case model.DrawSpec:
			if replaceSpec {
				continue
			}
		case model.RangeHint:
			if replaceRange {
				continue
			}
		case model.FieldSelectionPolicy:
			if replacePolicy {
				continue
			}
		}
		out = append(out, ann)
	}
	out = append(out, e.Annotations...)

	if e.Label == "" {
		return out
	}
	for i := len(out) - 1; i >= 0; i-- {
		if spec, ok := out[i].(model.DrawSpec); ok {
			spec.Label = e.Label
			out[i] = spec
			return out
		}
	}
	spec := model.NewDrawSpec()
	spec.Label = e.Label
	return append(out, spec)
}
