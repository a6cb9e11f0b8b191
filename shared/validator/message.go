package validator

import (
	"errors"
	"strings"
	"sync"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} cannot be blank",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"number":   "{field} must be a number",
		"int64":    "{field} is out of range",
		"datetime": "{field} must be a date formatted as {param}",
	}

	overridesMu sync.RWMutex
	overrides   = map[string]string{}
)

// RegisterMessages installs field-specific messages keyed by "<jsonField>.<tag>",
// e.g. "choreName.max". They take precedence over the generic tag messages.
func RegisterMessages(msgs map[string]string) {
	overridesMu.Lock()
	defer overridesMu.Unlock()

	for key, msg := range msgs {
		overrides[key] = msg
	}
}

func render(fieldErr val.FieldError) string {
	overridesMu.RLock()
	override, ok := overrides[fieldErr.Field()+"."+fieldErr.Tag()]
	overridesMu.RUnlock()

	if ok {
		return override
	}

	msg, ok := messages[fieldErr.Tag()]
	if !ok {
		return fieldErr.Error()
	}

	msg = strings.ReplaceAll(msg, "{field}", fieldErr.Field())

	return strings.ReplaceAll(msg, "{param}", fieldErr.Param())
}

// messagesOf renders every field error; non-validation errors yield their text.
func messagesOf(err error) Errors {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return Errors{err.Error()}
	}

	out := make(Errors, 0, len(valErrors))
	for _, valErr := range valErrors {
		out = append(out, render(valErr))
	}

	return out
}

// Errors is the list of human-readable validation messages for one request.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}
