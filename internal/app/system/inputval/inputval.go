// Package inputval validates submitted form fields before they reach a
// store. Validation rules are declared with struct tags:
//
//	type createResourceInput struct {
//	    Title string `validate:"required,max=200" label:"Title"`
//	    Type  string `validate:"required,oneof=lecture assignment reference" label:"Type"`
//	}
//
// The label tag supplies the human-facing field name used in error messages.
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/validate"
	"github.com/dalemusser/resourcehub/internal/domain/models"
)

// Result collects validation failures in field declaration order.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "" if validation passed.
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message.
func (r Result) All() []string { return r.errs }

// Validate applies the struct's validate tags to its string fields.
// Supported rules: required, max=N, oneof=a b c.
func Validate(input any) Result {
	var res Result

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		val := strings.TrimSpace(fmt.Sprint(v.Field(i).Interface()))

		for _, rule := range strings.Split(rules, ",") {
			if msg := applyRule(rule, label, val); msg != "" {
				res.errs = append(res.errs, msg)
				break // one message per field
			}
		}
	}
	return res
}

func applyRule(rule, label, val string) string {
	switch {
	case rule == "required":
		if val == "" {
			return fmt.Sprintf("%s is required.", label)
		}
	case strings.HasPrefix(rule, "max="):
		n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
		if err == nil && len(val) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	case strings.HasPrefix(rule, "oneof="):
		if val == "" {
			return "" // required handles empty
		}
		for _, opt := range strings.Fields(strings.TrimPrefix(rule, "oneof=")) {
			if val == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s is invalid.", label)
	}
	return ""
}

// IsValidResourceType reports whether t is an allowed resource type.
func IsValidResourceType(t string) bool {
	return models.IsValidResourceType(strings.TrimSpace(t))
}

// IsValidEmail reports whether s looks like a deliverable email address.
func IsValidEmail(s string) bool {
	return validate.SimpleEmailValid(strings.TrimSpace(s))
}
