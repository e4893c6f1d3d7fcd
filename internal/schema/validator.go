// Package schema validates decoded JSON payloads against declarative shape
// descriptors. Model responses arrive as untyped JSON with no guarantees;
// every constraint (presence, type, bounds, exact counts) is checked here,
// fail-fast in field declaration order.
package schema

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/fread-app/fread-server-go/pkg/errors"
)

type FieldType int

const (
	TypeInt FieldType = iota
	TypeString
	TypeStringList
)

// Field describes one required field of a shape.
type Field struct {
	Name string
	Type FieldType

	// Inclusive bounds, applied to TypeInt when Bounded is set.
	Min, Max int
	Bounded  bool

	// Exact element count for TypeStringList. Zero means any length.
	Count int

	// Per-string rune cap for TypeStringList elements. Zero means unlimited.
	MaxRunes int
}

// Shape is an ordered set of required fields.
type Shape struct {
	Name   string
	Fields []Field
}

// Values holds a payload re-typed by a successful validation.
type Values map[string]any

func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}

// Validate checks payload against the shape and returns the re-typed values,
// or a SchemaError for the first field that violates its constraint.
// Fields not declared in the shape are ignored.
func (s Shape) Validate(payload map[string]any) (Values, error) {
	values := make(Values, len(s.Fields))

	for _, field := range s.Fields {
		raw, ok := payload[field.Name]
		if !ok || raw == nil {
			return nil, errors.NewSchemaError(s.Name, field.Name, "is missing")
		}

		switch field.Type {
		case TypeInt:
			num, ok := raw.(float64) // encoding/json decodes all numbers to float64
			if !ok {
				return nil, errors.NewSchemaError(s.Name, field.Name, fmt.Sprintf("must be an integer, got %T", raw))
			}
			if num != math.Trunc(num) {
				return nil, errors.NewSchemaError(s.Name, field.Name, fmt.Sprintf("must be an integer, got %v", num))
			}
			value := int(num)
			if field.Bounded && (value < field.Min || value > field.Max) {
				return nil, errors.NewSchemaError(s.Name, field.Name,
					fmt.Sprintf("must be in [%d,%d], got %d", field.Min, field.Max, value))
			}
			values[field.Name] = value

		case TypeString:
			str, ok := raw.(string)
			if !ok {
				return nil, errors.NewSchemaError(s.Name, field.Name, fmt.Sprintf("must be a string, got %T", raw))
			}
			if str == "" {
				return nil, errors.NewSchemaError(s.Name, field.Name, "must not be empty")
			}
			values[field.Name] = str

		case TypeStringList:
			list, ok := raw.([]any)
			if !ok {
				return nil, errors.NewSchemaError(s.Name, field.Name, fmt.Sprintf("must be a list, got %T", raw))
			}
			if field.Count > 0 && len(list) != field.Count {
				return nil, errors.NewSchemaError(s.Name, field.Name,
					fmt.Sprintf("must have exactly %d entries, got %d", field.Count, len(list)))
			}
			strs := make([]string, len(list))
			for i, item := range list {
				str, ok := item.(string)
				if !ok {
					return nil, errors.NewSchemaError(s.Name, field.Name,
						fmt.Sprintf("entry %d must be a string, got %T", i, item))
				}
				if str == "" {
					return nil, errors.NewSchemaError(s.Name, field.Name,
						fmt.Sprintf("entry %d must not be empty", i))
				}
				if field.MaxRunes > 0 && utf8.RuneCountInString(str) > field.MaxRunes {
					return nil, errors.NewSchemaError(s.Name, field.Name,
						fmt.Sprintf("entry %d exceeds %d characters", i, field.MaxRunes))
				}
				strs[i] = str
			}
			values[field.Name] = strs

		default:
			return nil, errors.NewSchemaError(s.Name, field.Name, "has an unsupported field type")
		}
	}

	return values, nil
}
