// Package validation runs struct tag validation and turns the result into
// field level messages suitable for re-rendering a form.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FormKey holds errors that belong to the form as a whole.
const FormKey = ""

// Errors maps a form field name to its message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		if field == FormKey {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

// Get returns the message for field or an empty string.
func (e Errors) Get(field string) string {
	return e[field]
}

// Form returns the form level message.
func (e Errors) Form() string {
	return e[FormKey]
}

// Form builds an Errors value holding a single form level message.
func Form(msg string) Errors {
	return Errors{FormKey: msg}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once

	phoneExtension = regexp.MustCompile(`(?i)\s*(ext\.?|x|#)\s*\d+$`)
	phoneChars     = regexp.MustCompile(`^\+?[\d\s().\-]+$`)
	phoneDigit     = regexp.MustCompile(`\d`)
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
	})
	return validate
}

// IsPhone accepts the loose phone format of the contact form: digits, spaces,
// dots, dashes, parentheses, an optional leading '+' and an optional
// extension suffix.
func IsPhone(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	value = phoneExtension.ReplaceAllString(value, "")
	return phoneChars.MatchString(value) && phoneDigit.MatchString(value)
}

// Struct validates s and returns nil when it is valid.
func Struct(s interface{}) Errors {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Form(err.Error())
	}

	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := Errors{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(t, fe))
	}
	return out
}

func message(t reflect.Type, fe validator.FieldError) string {
	label := fe.Field()
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if l := sf.Tag.Get("label"); l != "" {
			label = l
		}
	}

	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "phone":
		return "Please enter a valid phone number"
	case "url":
		return label + " must be a valid URL"
	default:
		return label + " is invalid"
	}
}
