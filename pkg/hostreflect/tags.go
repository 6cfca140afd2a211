package hostreflect

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

const (
	tagDraw       = "draw"
	tagRange      = "range"
	tagDrawFields = "drawfields"
	tagHeader     = "header"
	tagSpace      = "space"
	tagHorizontal = "horizontal"
)

func parseTags(tag reflect.StructTag) (model.Annotations, error) {
	var anns model.Annotations

	if raw, ok := tag.Lookup(tagSpace); ok {
		height, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, model.Configf("", "", "space tag %q is not an integer", raw)
		}
		anns = append(anns, model.Space{Height: height})
	}
	if raw, ok := tag.Lookup(tagHeader); ok {
		anns = append(anns, model.Header{Text: raw})
	}
	if raw, ok := tag.Lookup(tagDraw); ok {
		spec, err := ParseDrawSpec(raw)
		if err != nil {
			return nil, err
		}
		anns = append(anns, spec)
	}
	if raw, ok := tag.Lookup(tagRange); ok {
		hint, err := ParseRange(raw)
		if err != nil {
			return nil, err
		}
		anns = append(anns, hint)
	}
	if raw, ok := tag.Lookup(tagDrawFields); ok {
		mask, err := ParseMask(raw)
		if err != nil {
			return nil, err
		}
		anns = append(anns, model.FieldSelectionPolicy{Mask: mask})
	}
	if _, ok := tag.Lookup(tagHorizontal); ok {
		anns = append(anns, model.Horizontal{})
	}
	return anns, nil
}

// ParseDrawSpec parses the body of a draw tag. "-" yields an Ignore spec.
// Items are comma separated: key=value pairs, the bare flags box,
// collapsible and vertical, or a bare widget kind.
func ParseDrawSpec(raw string) (model.DrawSpec, error) {
	spec := model.NewDrawSpec()
	raw = strings.TrimSpace(raw)
	if raw == "-" {
		spec.Kind = model.KindIgnore
		return spec, nil
	}
	if raw == "" {
		return spec, nil
	}

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, hasValue := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if !hasValue {
			switch key {
			case "box":
				spec.Box = true
			case "collapsible":
				spec.Collapsible = true
			case "vertical":
				spec.Vertical = true
			default:
				kind, ok := model.ParseWidgetKind(key)
				if !ok {
					return spec, model.Configf("", "", "unknown draw option %q", key)
				}
				spec.Kind = kind
			}
			continue
		}

		var err error
		switch key {
		case "kind":
			kind, ok := model.ParseWidgetKind(value)
			if !ok {
				return spec, model.Configf("", "", "unknown widget kind %q", value)
			}
			spec.Kind = kind
		case "label":
			spec.Label = value
		case "width":
			spec.Width, err = strconv.Atoi(value)
		case "height":
			spec.Height, err = strconv.Atoi(value)
		case "min":
			spec.Min, err = strconv.ParseFloat(value, 64)
		case "max":
			spec.Max, err = strconv.ParseFloat(value, 64)
		case "precision":
			spec.Precision, err = strconv.Atoi(value)
		case "maxlen", "maxLength":
			spec.MaxLength, err = strconv.Atoi(value)
		case "visibleOn":
			spec.VisibleOn = value
		case "invisibleOn":
			spec.InvisibleOn = value
		default:
			return spec, model.Configf("", "", "unknown draw option %q", key)
		}
		if err != nil {
			return spec, model.Configf("", "", "draw option %s=%q is malformed", key, value)
		}
	}
	return spec, nil
}

// ParseRange parses a "min,max" range.
func ParseRange(raw string) (model.RangeHint, error) {
	lo, hi, ok := strings.Cut(raw, ",")
	if !ok {
		return model.RangeHint{}, model.Configf("", "", "range tag %q must be \"min,max\"", raw)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return model.RangeHint{}, model.Configf("", "", "range tag %q has a malformed minimum", raw)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return model.RangeHint{}, model.Configf("", "", "range tag %q has a malformed maximum", raw)
	}
	return model.RangeHint{Min: min, Max: max}, nil
}

var maskNames = map[string]model.FieldMask{
	"any":               model.MaskAny,
	"public":            model.MaskPublic,
	"serialized":        model.MaskSerialized,
	"skipnotserialized": model.MaskSkipNotSerialized,
	"onlydrawattr":      model.MaskOnlyDrawAttr,
	"attronly":          model.MaskOnlyDrawAttr,
}

// ParseMask parses a "|" separated list of mask flag names.
func ParseMask(raw string) (model.FieldMask, error) {
	mask := model.MaskAny
	for _, part := range strings.Split(raw, "|") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		flag, ok := maskNames[name]
		if !ok {
			return mask, model.Configf("", "", "unknown field mask %q", part)
		}
		mask |= flag
	}
	return mask, nil
}

func isSerialized(tag reflect.StructTag) bool {
	for _, key := range []string{"json", "yaml"} {
		if raw, ok := tag.Lookup(key); ok && tagName(raw) != "-" {
			return true
		}
	}
	return false
}

func isNotSerialized(tag reflect.StructTag) bool {
	for _, key := range []string{"json", "yaml"} {
		if raw, ok := tag.Lookup(key); ok && tagName(raw) == "-" {
			return true
		}
	}
	return false
}

func tagName(raw string) string {
	name, _, _ := strings.Cut(raw, ",")
	return name
}
