package visibility

import (
	"strings"

	"github.com/goliatone/go-fieldbind/pkg/convert"
	"github.com/goliatone/go-fieldbind/pkg/model"
)

// Separator splits the field name from the literal in a condition.
const Separator = "|"

// Condition is a parsed "FieldName|Value" expression.
type Condition struct {
	Field   string
	Literal string
}

// Parse splits raw into its two parts. Anything other than exactly two parts
// is a configuration error.
func Parse(raw string) (Condition, error) {
	parts := strings.Split(raw, Separator)
	if len(parts) != 2 {
		return Condition{}, model.Configf("", "", "visibility condition %q must have 2 parts, name and value, e.g. FieldName|True", raw)
	}
	return Condition{Field: parts[0], Literal: parts[1]}, nil
}

type conditions struct{}

// Default returns the evaluator for "FieldName|Value" conditions.
func Default() Evaluator {
	return conditions{}
}

func (conditions) Eval(raw string, container any, desc model.TypeDescriptor) (bool, error) {
	cond, err := Parse(raw)
	if err != nil {
		return false, err
	}
	if desc == nil {
		return false, model.Configf("", "", "visibility condition %q evaluated without a container type", raw)
	}

	field, ok := lookupField(desc, cond.Field)
	if !ok {
		return false, model.Configf(desc.Name(), "", "visibility condition %q references unknown field %q", raw, cond.Field)
	}
	typ := field.Type()
	if !typ.IsPrimitive() && typ.Kind != model.TypeEnum {
		return false, model.Configf(desc.Name(), cond.Field, "type %s is not supported in visibility conditions", typ)
	}

	expected, err := coerceLiteral(cond.Literal, typ)
	if err != nil {
		return false, model.Configf(desc.Name(), cond.Field, "visibility condition %q: %v", raw, err)
	}
	return convert.Equal(field.Get(container), expected), nil
}

func lookupField(desc model.TypeDescriptor, name string) (model.FieldDescriptor, bool) {
	for _, field := range desc.Fields() {
		if field.Name() == name {
			return field, true
		}
	}
	return nil, false
}
