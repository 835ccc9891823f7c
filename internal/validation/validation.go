// Package validation checks plain field maps against declarative schemas.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
)

// Field value types understood by the validator.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeTime   = "time"
	TypeUUID   = "uuid"
	TypeEmail  = "email"
)

// Field describes the constraints on a single field.
// Min and Max bound the value for ints and the length for strings.
type Field struct {
	Type     string
	Required bool
	Enum     []string
	Min      *int
	Max      *int
}

// Schema maps field names to their constraints.
type Schema map[string]Field

var validate = validator.New()

// Validate checks data against schema. Optional fields that are absent or nil are skipped.
// All failures are collected into a single *errs.ValidationError.
func Validate(schema Schema, data map[string]any) error {
	failures := make(map[string]string)
	rules := make(map[string]any)

	for name, field := range schema {
		value, ok := data[name]
		if !ok || value == nil {
			if field.Required {
				failures[name] = "is required"
			}
			continue
		}
		if !field.accepts(value) {
			failures[name] = "must be of type " + field.Type
			continue
		}
		if rule := field.rule(); rule != "" {
			rules[name] = rule
		}
	}

	for name, err := range validate.ValidateMap(data, rules) {
		failures[name] = describe(schema[name], err)
	}

	if len(failures) > 0 {
		return &errs.ValidationError{Fields: failures}
	}
	return nil
}

func (f Field) accepts(value any) bool {
	switch f.Type {
	case TypeString, TypeUUID, TypeEmail:
		_, ok := value.(string)
		return ok
	case TypeInt:
		_, ok := value.(int)
		return ok
	case TypeTime:
		_, ok := value.(time.Time)
		return ok
	default:
		return true
	}
}

// rule compiles the field into a validator tag.
func (f Field) rule() string {
	var tags []string
	if f.Required {
		tags = append(tags, "required")
	}
	switch f.Type {
	case TypeUUID:
		tags = append(tags, "uuid")
	case TypeEmail:
		tags = append(tags, "email")
	}
	if len(f.Enum) > 0 {
		tags = append(tags, "oneof="+strings.Join(f.Enum, " "))
	}
	if f.Min != nil {
		tags = append(tags, "min="+strconv.Itoa(*f.Min))
	}
	if f.Max != nil {
		tags = append(tags, "max="+strconv.Itoa(*f.Max))
	}
	return strings.Join(tags, ",")
}

func describe(f Field, err any) string {
	e, ok := err.(error)
	if !ok {
		return "is invalid"
	}
	var vErrs validator.ValidationErrors
	if !errors.As(e, &vErrs) || len(vErrs) == 0 {
		return e.Error()
	}

	fe := vErrs[0]
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.Join(f.Enum, ", "))
	case "min":
		if f.Type == TypeInt {
			return "must be at least " + fe.Param()
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		if f.Type == TypeInt {
			return "must be at most " + fe.Param()
		}
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return "failed rule " + fe.Tag()
	}
}
