package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"choreboard/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// Normalizer is implemented by request DTOs that trim or default fields before validation.
type Normalizer interface {
	Normalize()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}

	// int64 rejects integers that cannot be stored in a bigint column.
	err = validate.RegisterValidation("int64", func(fl val.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 64)

		return err == nil
	})
	if err != nil {
		panic(err)
	}
}

// Decode reads a JSON body into data. An empty body is reported as a bad request.
func Decode[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)
	if errors.Is(err, io.EOF) {
		return failure.BadRequestFromString("request body cannot be empty")
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// Validate decodes r into data and validates it, reporting the first message as a bad request.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if errs := Collect(data); len(errs) > 0 {
		return failure.Validation(errs) //nolint:wrapcheck
	}

	return nil
}

// Collect normalizes data when supported and returns every validation message, or nil.
func Collect[T any](data *T) Errors {
	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	if err := validate.Struct(data); err != nil {
		return messagesOf(err)
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(messagesOf(err)[0]) //nolint:wrapcheck
	}

	return nil
}
