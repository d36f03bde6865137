package utils

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidPage        = errors.New("invalid page")
)

// FieldErrors collects validation messages per request field. Keys of list
// items look like "genres[0].name"; Render nests them for the response.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+strings.Join(fe[field], " "))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsFieldErrors reports whether err carries field level errors.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Render is the response body for fe. Keys such as "genres[1].name" are
// nested into a list with one error object per item, {} for items that
// passed, the way clients see errors of nested objects.
func (fe FieldErrors) Render() map[string]any {
	out := make(map[string]any, len(fe))
	nested := make(map[string]map[int]FieldErrors)

	for key, msgs := range fe {
		field, index, rest, ok := splitIndexed(key)
		if !ok {
			out[key] = msgs
			continue
		}
		if rest == "" {
			rest = "non_field_errors"
		}
		if nested[field] == nil {
			nested[field] = make(map[int]FieldErrors)
		}
		if nested[field][index] == nil {
			nested[field][index] = make(FieldErrors)
		}
		for _, msg := range msgs {
			nested[field][index].Add(rest, msg)
		}
	}

	for field, items := range nested {
		if _, ok := out[field]; ok {
			continue
		}
		size := 0
		for index := range items {
			size = max(size, index+1)
		}
		list := make([]map[string]any, size)
		for i := range list {
			if item, ok := items[i]; ok {
				list[i] = item.Render()
			} else {
				list[i] = map[string]any{}
			}
		}
		out[field] = list
	}

	return out
}

// splitIndexed splits "genres[1].name" into "genres", 1 and "name".
func splitIndexed(key string) (field string, index int, rest string, ok bool) {
	open := strings.Index(key, "[")
	if open <= 0 {
		return "", 0, "", false
	}
	end := strings.Index(key[open:], "]")
	if end < 0 {
		return "", 0, "", false
	}
	index, err := strconv.Atoi(key[open+1 : open+end])
	if err != nil || index < 0 {
		return "", 0, "", false
	}
	return key[:open], index, strings.TrimPrefix(key[open+end+1:], "."), true
}
