package convert

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-fieldbind/pkg/model"
)

// VectorPrecision is the number of fractional digits shown by vector and
// colour component editors.
const VectorPrecision = 6

// Bounds carries the per-field limits applied on commit.
type Bounds struct {
	Min       float64
	Max       float64
	Precision int
	MaxLength int
}

// BoundsOf extracts the commit limits from a DrawSpec.
func BoundsOf(spec model.DrawSpec) Bounds {
	return Bounds{
		Min:       spec.Min,
		Max:       spec.Max,
		Precision: spec.Precision,
		MaxLength: spec.MaxLength,
	}
}

// Unbounded returns limits that only apply the type range and the default
// precision.
func Unbounded() Bounds {
	return BoundsOf(model.NewDrawSpec())
}

// TypeRange returns the representable range of a numeric type.
func TypeRange(t model.ValueType) (float64, float64) {
	switch t.Kind {
	case model.TypeFloat:
		return -math.MaxFloat32, math.MaxFloat32
	case model.TypeDouble:
		return -math.MaxFloat64, math.MaxFloat64
	case model.TypeInt, model.TypeLong:
		bits := t.Bits
		if bits <= 0 || bits > 64 {
			bits = 64
			if t.Kind == model.TypeInt {
				bits = 32
			}
		}
		if t.Unsigned {
			return 0, float64(uint64(math.MaxUint64) >> (64 - bits))
		}
		hi := int64(math.MaxInt64) >> (64 - bits)
		return float64(-hi - 1), float64(hi)
	}
	return -math.MaxFloat64, math.MaxFloat64
}

// Clamp limits v to [min, max]. NaN collapses to zero clamped to the range.
func Clamp(v, min, max float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// RoundHalfEven rounds v to digits fractional digits, resolving midpoints to
// the even neighbour. Negative digits return v unchanged.
func RoundHalfEven(v float64, digits int) float64 {
	if digits < 0 || digits > 15 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow10(digits)
	scaled := v * pow
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.RoundToEven(scaled) / pow
}

// Zero returns the coerced zero value for t.
func Zero(t model.ValueType) any {
	switch t.Kind {
	case model.TypeInt, model.TypeLong:
		if t.Unsigned {
			return uint64(0)
		}
		return int64(0)
	case model.TypeFloat, model.TypeDouble:
		return float64(0)
	case model.TypeBool:
		return false
	case model.TypeString:
		return ""
	case model.TypeEnum:
		if len(t.Enum) > 0 {
			return t.Enum[0].Value
		}
		return int64(0)
	case model.TypeVector2:
		return model.Vector2{}
	case model.TypeVector3:
		return model.Vector3{}
	case model.TypeVector4:
		return model.Vector4{}
	case model.TypeColor:
		return model.Color{}
	case model.TypeArray:
		return []any{}
	}
	return nil
}

// ToText formats a normalised value for display. Floats use fixed precision
// when precision is non-negative.
func ToText(value any, t model.ValueType, precision int) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		if t.Kind == model.TypeEnum {
			if idx := t.EnumIndex(v); idx >= 0 {
				return t.Enum[idx].Name
			}
		}
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return formatFloat(v, t, precision)
	}
	return ""
}

func formatFloat(v float64, t model.ValueType, precision int) string {
	bits := 64
	if t.Kind == model.TypeFloat || t.Bits == 32 {
		bits = 32
	}
	if precision >= 0 {
		return strconv.FormatFloat(RoundHalfEven(v, precision), 'f', precision, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, bits)
}

// FromText parses widget text into a normalised value of type t. It never
// fails: unparseable numbers become zero, committed numbers respect b and the
// type range, strings are truncated to b.MaxLength runes.
func FromText(text string, t model.ValueType, b Bounds) any {
	switch t.Kind {
	case model.TypeString:
		return Truncate(text, b.MaxLength)
	case model.TypeBool:
		parsed, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return false
		}
		return parsed
	case model.TypeInt, model.TypeLong:
		return parseInteger(strings.TrimSpace(text), t, b)
	case model.TypeFloat, model.TypeDouble:
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return FromFloat(0, t, b)
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil && !isRangeErr(err) {
			return FromFloat(0, t, b)
		}
		return FromFloat(parsed, t, b)
	case model.TypeEnum:
		name := strings.TrimSpace(text)
		for _, member := range t.Enum {
			if member.Name == name {
				return member.Value
			}
		}
		return Zero(t)
	}
	return Zero(t)
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func parseInteger(text string, t model.ValueType, b Bounds) any {
	if text == "" {
		return FromFloat(0, t, b)
	}
	lo, hi := effectiveRange(t, b)
	if t.Unsigned {
		if parsed, err := strconv.ParseUint(text, 10, 64); err == nil {
			if float64(parsed) < lo || float64(parsed) > hi {
				return FromFloat(float64(parsed), t, b)
			}
			return parsed
		}
	} else if parsed, err := strconv.ParseInt(text, 10, 64); err == nil {
		if float64(parsed) < lo || float64(parsed) > hi {
			return FromFloat(float64(parsed), t, b)
		}
		return parsed
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeErr(err) {
		return FromFloat(0, t, b)
	}
	return FromFloat(parsed, t, b)
}

func effectiveRange(t model.ValueType, b Bounds) (float64, float64) {
	lo, hi := TypeRange(t)
	if b.Min > lo {
		lo = b.Min
	}
	if b.Max < hi {
		hi = b.Max
	}
	return lo, hi
}

// FromFloat commits a numeric widget result: clamp, round (half to even for
// integers, at b.Precision for floats) and normalise to t.
func FromFloat(v float64, t model.ValueType, b Bounds) any {
	lo, hi := effectiveRange(t, b)
	v = Clamp(v, lo, hi)
	switch t.Kind {
	case model.TypeInt, model.TypeLong:
		v = math.RoundToEven(v)
		if v < lo {
			v = math.Ceil(lo)
		}
		if v > hi {
			v = math.Floor(hi)
		}
		if t.Unsigned {
			return floatToUint(v)
		}
		return floatToInt(v)
	case model.TypeFloat, model.TypeDouble:
		if b.Precision >= 0 {
			v = Clamp(RoundHalfEven(v, b.Precision), lo, hi)
		}
		if t.Kind == model.TypeFloat {
			return float64(float32(v))
		}
		return v
	}
	return v
}

func floatToInt(v float64) int64 {
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(v)
}

func floatToUint(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}

// ToFloat widens a normalised numeric value. Non-numeric values yield zero.
func ToFloat(value any) float64 {
	switch v := value.(type) {
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// Truncate limits s to maxLength runes. A non-positive maxLength means
// unlimited.
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLength])
}

// ParseComponent parses one vector or colour component, yielding zero on
// empty or malformed input.
func ParseComponent(text string) float32 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(trimmed, 32)
	if err != nil {
		return 0
	}
	return float32(parsed)
}

// FormatComponent renders a vector or colour component.
func FormatComponent(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', VectorPrecision, 32)
}

// Equal compares two normalised values, descending into arrays.
func Equal(a, b any) bool {
	left, lok := a.([]any)
	right, rok := b.([]any)
	if lok || rok {
		if !lok || !rok || len(left) != len(right) {
			return false
		}
		for i := range left {
			if !Equal(left[i], right[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}
