package visibility

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

// coerceLiteral converts the literal half of a condition to the normalised
// representation of typ so values compare by equality.
func coerceLiteral(literal string, typ model.ValueType) (any, error) {
	switch typ.Kind {
	case model.TypeEnum:
		for _, member := range typ.Enum {
			if member.Name == literal {
				return member.Value, nil
			}
		}
		return nil, fmt.Errorf("value %q is not a member of %s", literal, typ)
	case model.TypeString:
		return literal, nil
	case model.TypeBool:
		parsed, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, fmt.Errorf("value %q cannot be parsed as bool", literal)
		}
		return parsed, nil
	case model.TypeInt, model.TypeLong:
		bits := typ.Bits
		if bits <= 0 {
			bits = 64
		}
		if typ.Unsigned {
			parsed, err := strconv.ParseUint(literal, 10, bits)
			if err != nil {
				return nil, fmt.Errorf("value %q cannot be parsed as %s", literal, typ)
			}
			return parsed, nil
		}
		parsed, err := strconv.ParseInt(literal, 10, bits)
		if err != nil {
			return nil, fmt.Errorf("value %q cannot be parsed as %s", literal, typ)
		}
		return parsed, nil
	case model.TypeFloat, model.TypeDouble:
		bits := 64
		if typ.Kind == model.TypeFloat {
			bits = 32
		}
		parsed, err := strconv.ParseFloat(literal, bits)
		if err != nil || math.IsNaN(parsed) {
			return nil, fmt.Errorf("value %q cannot be parsed as %s", literal, typ)
		}
		if bits == 32 {
			return float64(float32(parsed)), nil
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("type %s is not supported", typ)
}
