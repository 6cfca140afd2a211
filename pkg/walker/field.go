package walker

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbind/pkg/convert"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/ui"
	"github.com/goliatone/go-fieldbind/pkg/visibility"
	"github.com/goliatone/go-fieldbind/pkg/widgets"
)

// Eligible reports whether an undecorated field passes mask. Fields carrying
// a DrawSpec bypass the mask entirely.
func Eligible(field model.FieldDescriptor, mask model.FieldMask) bool {
	if mask.Has(model.MaskOnlyDrawAttr) {
		return false
	}
	if mask.Has(model.MaskSkipNotSerialized) && field.NotSerialized() {
		return false
	}
	public, serialized := mask.Has(model.MaskPublic), mask.Has(model.MaskSerialized)
	if !public && !serialized {
		return true
	}
	return public && field.Exported() || serialized && field.Serialized()
}

// effectiveSpec returns the spec governing field, or false when the field is
// skipped. Undecorated numerics with a RangeHint become sliders.
func effectiveSpec(field model.FieldDescriptor, mask model.FieldMask) (model.DrawSpec, bool, bool) {
	anns := field.Annotations()
	if spec, ok := anns.DrawSpec(); ok {
		return spec, true, spec.Kind != model.KindIgnore
	}
	if !Eligible(field, mask) {
		return model.DrawSpec{}, false, false
	}
	spec := model.NewDrawSpec()
	if hint, ok := anns.Range(); ok && field.Type().IsNumeric() {
		spec.Kind = model.KindSlider
		spec.Min = hint.Min
		spec.Max = hint.Max
	}
	return spec, false, true
}

func labelOf(field model.FieldDescriptor, spec model.DrawSpec) string {
	if spec.Label != "" {
		return spec.Label
	}
	return field.Name()
}

func (p *pass) field(f frame, field model.FieldDescriptor) (bool, error) {
	spec, explicit, drawn := effectiveSpec(field, f.mask)
	if !drawn {
		return false, nil
	}
	return p.draw(f, field, spec, explicit)
}

func (p *pass) draw(f frame, field model.FieldDescriptor, spec model.DrawSpec, explicit bool) (bool, error) {
	w := p.walker
	tk := w.toolkit

	if explicit {
		visible, err := visibility.IsVisible(w.visibility, spec, f.container, f.desc)
		if err != nil {
			return false, err
		}
		if !visible {
			return false, nil
		}
	}

	anns := field.Annotations()
	for _, space := range anns.Spaces() {
		tk.Space(space.Height)
	}
	for _, header := range anns.Headers() {
		tk.Header(header.Text)
	}

	label := labelOf(field, spec)
	id := f.seed.Child(model.TypeKey(f.desc), field.Name())
	path := f.fieldPath(field.Name())

	switch field.Type().Kind {
	case model.TypeComposite:
		return p.composite(f, field, spec, label, id, path)
	case model.TypeOpaque:
		name := NilLabel
		if opaque, ok := field.Get(f.container).(model.Opaque); ok && opaque != nil {
			name = opaque.OpaqueName()
		}
		p.inlineLabel(label, name)
		return false, nil
	}
	return p.leaf(f, field, spec, label, id, path)
}

func (p *pass) inlineLabel(label, text string) {
	tk := p.walker.toolkit
	tk.Begin(ui.Horizontal, false)
	tk.Label(label)
	tk.Label(text)
	tk.End()
}

func (p *pass) composite(f frame, field model.FieldDescriptor, spec model.DrawSpec, label string, id model.Identity, path string) (bool, error) {
	w := p.walker
	tk := w.toolkit
	anns := field.Annotations()

	value := field.Get(f.container)
	if value == nil {
		p.inlineLabel(label, NilLabel)
		return false, nil
	}
	if p.onPath(value) {
		w.logger.Debug("cycle detected", zap.String("path", path))
		p.inlineLabel(label, CycleLabel)
		return false, nil
	}
	if f.depth+1 > w.maxDepth {
		return false, model.Configf("", "", "composite nesting exceeds %d levels", w.maxDepth)
	}
	if field.Type().Describe == nil {
		return false, model.Configf("", "", "composite type %s has no descriptor", field.Type())
	}
	nested, err := field.Type().Describe()
	if err != nil {
		return false, err
	}

	mask := f.mask
	if policy, ok := anns.Policy(); ok {
		mask = policy.Mask
	}

	expanded := spec.Collapsible && w.collapse.IsExpanded(id)
	box := spec.Box || expanded
	horizontal := anns.Horizontal() || nested.Annotations().Horizontal()
	if horizontal {
		tk.Begin(ui.Horizontal, box)
		box = false
	}

	if spec.Collapsible {
		tk.Begin(ui.Horizontal, false)
	}
	tk.Label(label)
	visible := true
	if spec.Collapsible {
		visible = expanded
		text := "Show"
		if visible {
			text = "Hide"
		}
		if tk.Button(ui.Control{ID: id, Path: path, Label: text}) {
			w.collapse.Toggle(id)
			w.logger.Debug("toggled collapse", zap.String("path", path), zap.Bool("expanded", !expanded))
		}
		tk.End()
	}

	changed := false
	if visible {
		if box {
			tk.Begin(ui.Vertical, true)
		}
		changed, err = p.walk(frame{
			container: value,
			desc:      nested,
			mask:      mask,
			seed:      id,
			path:      path,
			depth:     f.depth + 1,
		})
		if box {
			tk.End()
		}
		if changed {
			field.Set(f.container, value)
		}
	}

	if horizontal {
		tk.End()
	}
	return changed, err
}

func (p *pass) leaf(f frame, field model.FieldDescriptor, spec model.DrawSpec, label string, id model.Identity, path string) (bool, error) {
	w := p.walker
	tk := w.toolkit
	t := field.Type()

	kind, err := w.resolver.Resolve(t, spec.Kind)
	if err != nil {
		return false, err
	}
	w.logger.Debug("resolved field",
		zap.String("path", path),
		zap.Stringer("type", t),
		zap.Stringer("kind", kind),
	)
	if kind == model.KindIgnore {
		return false, nil
	}

	c := control(id, path, label, spec, kind)
	value := field.Get(f.container)
	bounds := convert.BoundsOf(spec)

	var (
		next   any
		edited bool
	)
	switch kind {
	case model.KindField:
		switch {
		case t.IsSpecial():
			tk.Begin(direction(spec), false)
			tk.Label(label)
			next, edited = widgets.EditComponents(tk, c, value, t)
			tk.End()
		case t.Kind == model.TypeArray:
			items, _ := value.([]any)
			tk.Begin(ui.Vertical, false)
			next, edited = widgets.EditArray(tk, c, items, *t.Elem, bounds)
			tk.End()
		default:
			next, edited = widgets.EditText(tk, c, value, t, bounds)
		}
	case model.KindSlider:
		next, edited = widgets.EditSlider(tk, c, value, t, bounds)
	case model.KindToggle:
		current, _ := value.(bool)
		next, edited = widgets.EditToggle(tk, c, current)
	case model.KindToggleGroup, model.KindPopupList:
		current, _ := value.(int64)
		next, edited = widgets.EditEnum(tk, c, current, t, kind)
	}

	if edited {
		field.Set(f.container, next)
		w.logger.Debug("committed field", zap.String("path", path), zap.Any("value", next))
	}
	return edited, nil
}

func control(id model.Identity, path, label string, spec model.DrawSpec, kind model.WidgetKind) ui.Control {
	c := ui.Control{ID: id, Path: path, Label: label, Width: spec.Width, Height: spec.Height}
	if c.Width == 0 {
		switch kind {
		case model.KindField:
			c.Width = ui.DefaultFieldWidth
		case model.KindSlider:
			c.Width = ui.DefaultSliderWidth
		}
	}
	if c.Height == 0 {
		c.Height = ui.DefaultHeight
	}
	return c
}

func direction(spec model.DrawSpec) ui.Direction {
	if spec.Vertical {
		return ui.Vertical
	}
	return ui.Horizontal
}
