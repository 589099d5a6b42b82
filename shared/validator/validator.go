package validator

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"forest/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonName)

	if err := v.RegisterValidation("enum", validEnum); err != nil {
		panic(err)
	}

	return v
}

// jsonName reports fields by the name clients send.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// validEnum accepts values whose type reports itself valid, like time units and clock hours.
func validEnum(field val.FieldLevel) bool {
	method := field.Field().MethodByName("Valid")
	if !method.IsValid() || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
		return false
	}

	valid, ok := method.Call(nil)[0].Interface().(bool)

	return ok && valid
}

// Validate decodes a JSON body into data and validates it. Both failures are 400s.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(errors.Wrap(err, "failed to decode request body"))
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}
