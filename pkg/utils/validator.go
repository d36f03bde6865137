package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so errors line up with the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidateStruct runs the validate tags of data and returns the failures
// keyed by json field name, or nil.
func ValidateStruct(data interface{}) FieldErrors {
	return validateFields(data, nil)
}

func validateFields(data interface{}, present map[string]bool) FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errs := make(FieldErrors)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			field := fieldPath(fe)
			errs.Add(field, getErrorMessage(fe, present[field]))
		}
	}

	return errs
}

// fieldPath strips the root struct name from the namespace:
// "MovieRequest.genres[0].name" becomes "genres[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func topLevel(field string) string {
	if i := strings.IndexAny(field, ".["); i >= 0 {
		return field[:i]
	}
	return field
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError, present bool) string {
	switch err.Tag() {
	case "required":
		if present && err.Kind() == reflect.String {
			return "This field may not be blank."
		}
		if present && err.Kind() == reflect.Slice {
			return "This list may not be empty."
		}
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		switch err.Kind() {
		case reflect.String:
			if err.Param() == "1" {
				return "This field may not be blank."
			}
			return fmt.Sprintf("Ensure this field has at least %s characters.", err.Param())
		case reflect.Slice:
			if err.Param() == "1" {
				return "This list may not be empty."
			}
			return fmt.Sprintf("Ensure this field has at least %s elements.", err.Param())
		default:
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", err.Param())
		}
	case "max":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf("Ensure this field has no more than %s characters.", err.Param())
		case reflect.Slice:
			return fmt.Sprintf("Ensure this field has no more than %s elements.", err.Param())
		default:
			return fmt.Sprintf("Ensure this value is less than or equal to %s.", err.Param())
		}
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "uuid", "uuid4":
		return "Must be a valid UUID."
	default:
		return "Invalid value."
	}
}
