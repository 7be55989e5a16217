package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths with their json names, not Go identifiers
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Defaulter lets a schema fill defaults that differ from the Go zero value
// after decoding and before validation.
type Defaulter interface {
	SetDefaults()
}

// Parse is the safe entry point of the schema layer: it decodes raw JSON
// into the schema type, applies defaults and runs every field constraint.
// It never panics on malformed input; failures come back as an IssueList.
// When strict is true, payload keys not declared on the schema are rejected.
func Parse[T any](data []byte, strict bool) (*T, *IssueList) {
	out := new(T)

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(out); err != nil {
		issues := &IssueList{}
		if field, ok := unknownField(err); ok {
			issues.add(field, fmt.Sprintf("unknown key %q", field), "unknown_key")
		} else {
			issues.add("", err.Error(), "invalid_json")
		}
		return nil, issues
	}

	if d, ok := any(out).(Defaulter); ok {
		d.SetDefaults()
	}

	if issues := check(out); issues != nil {
		return nil, issues
	}
	return out, nil
}

// MustParse is the strict entry point: schema misuse (a non-struct schema
// type) panics, input failures still come back as an IssueList.
func MustParse[T any](data []byte, strict bool) (*T, *IssueList) {
	if k := reflect.TypeOf((*T)(nil)).Elem().Kind(); k != reflect.Struct {
		panic(fmt.Sprintf("schemas: %s is not a struct schema", reflect.TypeOf((*T)(nil)).Elem()))
	}
	return Parse[T](data, strict)
}

// ParseValues validates a flat string map (path params, query params,
// headers) against the schema, coercing values to the field types.
func ParseValues[T any](values map[string]string, strict bool) (*T, *IssueList) {
	out := new(T)
	issues := &IssueList{}

	rv := reflect.ValueOf(out).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		issues.add("", fmt.Sprintf("%s is not a struct schema", rt), "invalid_schema")
		return nil, issues
	}

	fields := make(map[string]reflect.Value, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		fields[name] = rv.Field(i)
	}

	for key, raw := range values {
		field, ok := fields[strings.ToLower(key)]
		if !ok {
			if strict {
				issues.add(key, fmt.Sprintf("unknown key %q", key), "unknown_key")
			}
			continue
		}
		if err := assign(field, raw); err != nil {
			issues.add(strings.ToLower(key), err.Error(), "invalid_type")
		}
	}

	if len(issues.Issues) > 0 {
		return nil, issues
	}

	if d, ok := any(out).(Defaulter); ok {
		d.SetDefaults()
	}

	if issues := check(out); issues != nil {
		return nil, issues
	}
	return out, nil
}

func assign(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		elem := reflect.New(field.Type().Elem())
		if err := assign(elem.Elem(), raw); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}

func check(v any) *IssueList {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		issues := &IssueList{}
		issues.add("", err.Error(), "invalid")
		return issues
	}

	issues := &IssueList{}
	for _, fe := range verrs {
		issues.add(issuePath(fe.Namespace()), messageFor(fe), fe.Tag())
	}
	return issues
}

// issuePath turns a validator namespace like
// "CreateQuestion.answers[0].answer" into "answers.0.answer".
func issuePath(namespace string) string {
	parts := strings.SplitN(namespace, ".", 2)
	if len(parts) < 2 {
		return namespace
	}
	path := parts[1]
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")
	return path
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid4", "uuid":
		return "must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field `
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}
