package binder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/segmentio/encoding/json"
)

const (
	gt       = "gt"
	gte      = "gte"
	mx       = "max"
	mn       = "min"
	oneof    = "oneof"
	phone    = "phone"
	required = "required"
	showtime = "showtime"
	urlTag   = "url"
	usState  = "us_state"
)

func formatUnmarshalTypeError(err *json.UnmarshalTypeError) string {
	return fmt.Sprintf("%q should be of type %s", strings.Trim(err.Field, "."), err.Type)
}

func formatSchemaConversionError(err schema.ConversionError) string {
	return fmt.Sprintf("%q should be of type %s", err.Key, err.Type)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case gt:
		return fmt.Sprintf("%q must be greater than %s", field, err.Param())
	case gte:
		return fmt.Sprintf("%q must be greater than or equal to %s", field, err.Param())
	case mx:
		return formatBound(field, "less", err)
	case mn:
		return formatBound(field, "greater", err)
	case oneof:
		valids := []string{}
		for _, p := range strings.Fields(err.Param()) {
			valids = append(valids, fmt.Sprintf("%q", p))
		}
		return fmt.Sprintf("%q must be one of the following: %s", field, strings.Join(valids, ", "))
	case phone:
		return fmt.Sprintf("%q must be in the format xxx-xxx-xxxx", field)
	case required:
		return fmt.Sprintf("%q is required", field)
	case showtime:
		return fmt.Sprintf("%q should be in the format of YYYY-MM-DD HH:MM:SS", field)
	case urlTag:
		return fmt.Sprintf("%q must be a valid URL", field)
	case usState:
		return fmt.Sprintf("%q must be a US state code", field)
	default:
		return fmt.Sprintf("%q failed the %q check", field, err.Tag())
	}
}

func formatBound(field, direction string, err validator.FieldError) string {
	//exhaustive:ignore
	switch err.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%q must be %s than or equal to %s", field, direction, err.Param())
	case reflect.Slice:
		resource := "element"
		if err.Param() != "1" {
			resource += "s"
		}
		return fmt.Sprintf("%q length must be %s than or equal to %s %s", field, direction, err.Param(), resource)
	default:
		resource := "character"
		if err.Param() != "1" {
			resource += "s"
		}
		return fmt.Sprintf("%q length must be %s than or equal to %s %s", field, direction, err.Param(), resource)
	}
}
