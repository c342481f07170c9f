package model

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ValueKind is the runtime type of a collected Value.
type ValueKind int

const (
	// ValueString holds text, including a single select choice.
	ValueString ValueKind = iota
	// ValueInteger holds an int64.
	ValueInteger
	// ValueFloat holds a float64.
	ValueFloat
	// ValueBoolean holds a bool.
	ValueBoolean
	// ValueList holds the choices of a multiselect parameter.
	ValueList
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueBoolean:
		return "boolean"
	case ValueList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a typed parameter value. The zero Value is the empty string.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
	list []string
}

// StringValue creates a string Value.
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

// IntegerValue creates an integer Value.
func IntegerValue(i int64) Value { return Value{kind: ValueInteger, i: i} }

// FloatValue creates a float Value.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, f: f} }

// BooleanValue creates a boolean Value.
func BooleanValue(b bool) Value { return Value{kind: ValueBoolean, b: b} }

// ListValue creates a list Value. The slice is copied.
func ListValue(items []string) Value {
	return Value{kind: ValueList, list: slices.Clone(items)}
}

// Kind returns the value's runtime type.
func (v Value) Kind() ValueKind { return v.kind }

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// List returns a copy of the list payload.
func (v Value) List() []string { return slices.Clone(v.list) }

// Native returns the value as the Go type templates see:
// string, int64, float64, bool or []string.
func (v Value) Native() any {
	switch v.kind {
	case ValueInteger:
		return v.i
	case ValueFloat:
		return v.f
	case ValueBoolean:
		return v.b
	case ValueList:
		return slices.Clone(v.list)
	default:
		return v.s
	}
}

// IsEmpty reports whether the value is an empty string or an empty list.
// Numbers and booleans are never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case ValueString:
		return v.s == ""
	case ValueList:
		return len(v.list) == 0
	default:
		return false
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueInteger:
		return v.i == o.i
	case ValueFloat:
		return v.f == o.f
	case ValueBoolean:
		return v.b == o.b
	case ValueList:
		return slices.Equal(v.list, o.list)
	default:
		return v.s == o.s
	}
}

// String formats the value for display.
func (v Value) String() string {
	switch v.kind {
	case ValueInteger:
		return strconv.FormatInt(v.i, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case ValueBoolean:
		return strconv.FormatBool(v.b)
	case ValueList:
		return "[" + strings.Join(v.list, ", ") + "]"
	default:
		return v.s
	}
}

// ValueOf converts a decoded scalar (from TOML, YAML or JSON) to a Value.
// Supported inputs are strings, booleans, Go integer and float types, and
// slices whose elements are all strings.
func ValueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case string:
		return StringValue(v), nil
	case bool:
		return BooleanValue(v), nil
	case int:
		return IntegerValue(int64(v)), nil
	case int32:
		return IntegerValue(int64(v)), nil
	case int64:
		return IntegerValue(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer %d overflows int64", v)
		}
		return IntegerValue(int64(v)), nil
	case float32:
		return FloatValue(float64(v)), nil
	case float64:
		return FloatValue(v), nil
	case []string:
		return ListValue(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("list element %d is %T, expected string", i, item)
			}
			items = append(items, s)
		}
		return ListValue(items), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
