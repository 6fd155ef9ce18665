// Package validate decodes JSON request bodies against struct schemas.
//
// A schema is a struct whose json tags name the wire fields and whose
// validate tags carry go-playground/validator constraints. Presence is
// expressed by the field type:
//
//	T            required
//	*T           optional; absent stays nil, null is rejected
//	Nullable[T]  optional; null is accepted and recorded
//
// Unknown fields are ignored. Every field is checked and all failures are
// returned together, ordered by field declaration.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed constraint, addressed by its wire field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the complete set of violations for one payload.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BodyField names errors that concern the payload as a whole.
const BodyField = "body"

var std = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(nullableValue, Nullable[int64]{}, Nullable[string]{})
	return v
}

// Decode parses data into a T and validates it.
// The returned error is always Errors when the payload is rejected.
func Decode[T any](data []byte) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("validate: schema %T is not a struct", out))
	}

	fields := map[string]json.RawMessage{}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &fields); err != nil || fields == nil {
			return out, Errors{{Field: BodyField, Message: "must be a JSON object"}}
		}
	}

	rt := rv.Type()
	var errs []indexed
	failed := make(map[string]bool)

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)

		raw, present := fields[name]
		switch {
		case !present:
			if isRequired(sf.Type) {
				errs = append(errs, indexed{i, FieldError{name, "is required"}})
				failed[sf.Name] = true
			}
		case bytes.Equal(bytes.TrimSpace(raw), []byte("null")):
			if n, ok := fv.Addr().Interface().(nullSetter); ok {
				n.setNull()
				continue
			}
			msg := "must not be null"
			if isRequired(sf.Type) {
				msg = "is required"
			}
			errs = append(errs, indexed{i, FieldError{name, msg}})
			failed[sf.Name] = true
		default:
			if err := json.Unmarshal(raw, fv.Addr().Interface()); err != nil {
				errs = append(errs, indexed{i, FieldError{name, "must be " + typeName(sf.Type)}})
				failed[sf.Name] = true
				fv.SetZero()
			}
		}
	}

	if err := std.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return out, fmt.Errorf("validate %T: %w", out, err)
		}
		for _, fe := range verrs {
			if failed[fe.StructField()] {
				continue
			}
			sf, ok := rt.FieldByName(fe.StructField())
			if !ok {
				continue
			}
			errs = append(errs, indexed{sf.Index[0], FieldError{fe.Field(), message(fe)}})
		}
	}

	if len(errs) == 0 {
		return out, nil
	}
	sort.SliceStable(errs, func(a, b int) bool { return errs[a].pos < errs[b].pos })
	result := make(Errors, len(errs))
	for i, e := range errs {
		result[i] = e.err
	}
	return out, result
}

type indexed struct {
	pos int
	err FieldError
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return name
}

var nullableIface = reflect.TypeOf((*nullSetter)(nil)).Elem()

func isNullable(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(nullableIface)
}

func isRequired(t reflect.Type) bool {
	return t.Kind() != reflect.Pointer && !isNullable(t)
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if isNullable(t) {
		t = t.Field(0).Type
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString && fe.Param() == "1" {
			return "must not be empty"
		}
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		if fe.Param() == "0" {
			return "must be a positive number"
		}
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
