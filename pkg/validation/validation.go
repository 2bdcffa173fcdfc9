package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// Validator wraps go-playground/validator with the tags this service needs:
// "notblank" (non-empty after trimming) and "username".
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s and returns one message per failing field.
func (v *Validator) Struct(s interface{}) []string {
	return messages(v.validate.Struct(s), "")
}

// Var validates a single value as field.
func (v *Validator) Var(field string, value interface{}, tag string) []string {
	return messages(v.validate.Var(value, tag), field)
}

func messages(err error, field string) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = fe.Field()
		}
		out = append(out, describe(name, fe))
	}
	return out
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s may not be blank.", field)
	case "max":
		return fmt.Sprintf("Ensure %s has no more than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("Ensure %s has at least %s characters.", field, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("Enter a valid URL for %s.", field)
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return fmt.Sprintf("%s is invalid (%s).", field, fe.Tag())
	}
}
