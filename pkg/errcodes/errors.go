package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

// IsNotFound reports whether err is a not-found error for any resource.
func IsNotFound(err error) bool {
	e, ok := asError(err)
	return ok && e.Code == "not_found"
}

// WriteFailed is the one outcome callers see when a booking write is rolled
// back, whatever the storage layer reported. verb is the past participle of
// the attempted action ("listed", "updated", "deleted").
func WriteFailed(resource, name, verb string) error {
	subject := resource
	if name != "" {
		subject += " " + name
	}
	return &Error{
		http.StatusInternalServerError,
		fmt.Sprintf("An error occurred. %s could not be %s, please try again.", subject, verb),
		"write_failed",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

// IsValidation reports whether err rejects caller input rather than reporting
// a failure.
func IsValidation(err error) bool {
	e, ok := asError(err)
	return ok && (e.Code == "validation_error" || e.Code == "validation_type_error")
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
