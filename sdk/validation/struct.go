package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors are keyed by the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Struct runs the validate tags of v and returns the failures as
// FieldErrors carrying the API's messages. Pointer fields tagged omitnil
// are only checked when present.
func Struct(v any) FieldErrors {
	fe := FieldErrors{}

	err := validate.Struct(v)
	if err == nil {
		return fe
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe.Add("non_field_errors", err.Error())
		return fe
	}

	for _, e := range verrs {
		fe.Add(e.Field(), message(e))
	}
	return fe
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return MsgRequired
	case "notblank":
		return MsgBlank
	case "max":
		n, err := strconv.Atoi(e.Param())
		if err != nil {
			return MsgWrongType
		}
		return MaxLengthMsg(n)
	case "oneof":
		return ChoiceMsg(valueString(e.Value()))
	default:
		return fmt.Sprintf("Failed on the %q rule.", e.Tag())
	}
}

func valueString(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}
