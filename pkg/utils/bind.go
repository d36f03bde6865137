package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

// ErrMalformedBody is returned by BindJSON when the body is not a JSON object.
var ErrMalformedBody = errors.New("JSON parse error")

// FieldMessenger lets a field type choose the message reported when its
// JSON value cannot be decoded.
type FieldMessenger interface {
	FieldMessage() string
}

// BindJSON decodes the request body into dst one field at a time, then runs
// the validate tags. A value of the wrong type is reported on its own field
// and does not hide errors on the other fields. dst must point to a struct.
//
// Fields tagged `nullable:"true"` accept an explicit JSON null. Strings,
// nested ones included, are trimmed of surrounding whitespace before
// validation unless tagged `trim:"false"`. Integer fields also take integral
// numbers written as 3.0 or "3".
func BindJSON(r *http.Request, dst interface{}) (FieldErrors, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w - %v", ErrMalformedBody, err)
	}

	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("%w - %v", ErrMalformedBody, err)
		}
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind target must be a pointer to struct, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	errs := make(FieldErrors)
	present := make(map[string]bool)

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}

		value, ok := raw[name]
		if !ok {
			continue
		}
		present[name] = true

		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			if sf.Tag.Get("nullable") != "true" {
				errs.Add(name, "This field may not be null.")
			}
			continue
		}

		target := reflect.New(sf.Type)
		if err := json.Unmarshal(value, target.Interface()); err != nil {
			if !decodeIntegral(value, target.Elem()) {
				errs.Add(name, invalidMessage(sf.Type, value, err))
				continue
			}
		}
		if sf.Tag.Get("trim") != "false" {
			trimStrings(target.Elem())
		}
		rv.Field(i).Set(target.Elem())
	}

	for field, msgs := range validateFields(dst, present) {
		if errs.Has(topLevel(field)) {
			continue
		}
		for _, msg := range msgs {
			errs.Add(field, msg)
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// trimStrings trims every settable string reachable from v.
func trimStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			trimStrings(v.Elem())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			trimStrings(v.Index(i))
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() && f.Tag.Get("trim") != "false" {
				trimStrings(v.Field(i))
			}
		}
	}
}

var integralSuffix = regexp.MustCompile(`\.0*\s*$`)

// decodeIntegral sets an integer field (or pointer to one) from a JSON
// number or string holding a whole value, such as 3.0 or "3".
func decodeIntegral(value json.RawMessage, v reflect.Value) bool {
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return false
	}

	raw := string(bytes.TrimSpace(value))
	var quoted string
	if json.Unmarshal(value, &quoted) == nil {
		raw = strings.TrimSpace(quoted)
	}
	n, err := strconv.ParseInt(integralSuffix.ReplaceAllString(raw, ""), 10, 64)
	if err != nil {
		return false
	}

	target := reflect.New(t).Elem()
	if target.OverflowInt(n) {
		return false
	}
	target.SetInt(n)

	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	v.Set(target)
	return true
}

func jsonName(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func invalidMessage(t reflect.Type, value json.RawMessage, err error) string {
	var messenger FieldMessenger
	if errors.As(err, &messenger) {
		return messenger.FieldMessage()
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	case reflect.Slice:
		if kind := jsonKind(value); kind != "list" {
			return fmt.Sprintf("Expected a list of items but got type %q.", kind)
		}
		return "Invalid data. Expected a list of dictionaries."
	case reflect.Struct, reflect.Map:
		return fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonKind(value))
	default:
		return "Invalid value."
	}
}

// jsonKind names the JSON type of value the way clients would see it.
func jsonKind(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return "null"
	}
	switch trimmed[0] {
	case '"':
		return "str"
	case '[':
		return "list"
	case '{':
		return "dict"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		if bytes.ContainsAny(trimmed, ".eE") {
			return "float"
		}
		return "int"
	}
}
