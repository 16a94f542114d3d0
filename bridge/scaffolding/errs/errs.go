// Package errs provides the error type handlers return to clients. Each
// code knows its HTTP status and body shape.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/jrazmi/join/sdk/validation"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

var (
	InvalidArgument = ErrCode{value: 1}
	AlreadyExists   = ErrCode{value: 2}
	Unauthenticated = ErrCode{value: 3}
	NotFound        = ErrCode{value: 4}
	Unavailable     = ErrCode{value: 5}
	Internal        = ErrCode{value: 6}
	InternalOnlyLog = ErrCode{value: 7}
)

var codeNames = map[ErrCode]string{
	InvalidArgument: "invalid_argument",
	AlreadyExists:   "already_exists",
	Unauthenticated: "unauthenticated",
	NotFound:        "not_found",
	Unavailable:     "unavailable",
	Internal:        "internal",
	InternalOnlyLog: "internal_only_log",
}

var httpStatus = map[ErrCode]int{
	InvalidArgument: http.StatusBadRequest,
	AlreadyExists:   http.StatusBadRequest,
	Unauthenticated: http.StatusUnauthorized,
	NotFound:        http.StatusNotFound,
	Unavailable:     http.StatusInternalServerError,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
}

// Error represents an error in the system. FuncName and FileName record
// where it was created for the error log.
type Error struct {
	Code     ErrCode
	Message  string
	Fields   validation.FieldErrors
	FuncName string
	FileName string
}

// New constructs an error from err, recording the caller.
func New(code ErrCode, err error) *Error {
	return newError(code, err.Error(), nil)
}

// Newf constructs an error from a format string, recording the caller.
func Newf(code ErrCode, format string, v ...any) *Error {
	return newError(code, fmt.Sprintf(format, v...), nil)
}

// NewFieldErrors constructs an InvalidArgument error keyed by field.
func NewFieldErrors(fe validation.FieldErrors) *Error {
	return newError(InvalidArgument, fe.Error(), fe)
}

func newError(code ErrCode, msg string, fields validation.FieldErrors) *Error {
	pc, filename, line, _ := runtime.Caller(2)

	return &Error{
		Code:     code,
		Message:  msg,
		Fields:   fields,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements web.Encoder. Not found carries no body.
func (e *Error) Encode() ([]byte, string, error) {
	var body any

	switch e.Code {
	case NotFound:
		return nil, "", nil
	case InvalidArgument:
		if len(e.Fields) > 0 {
			body = e.Fields
		} else {
			body = map[string]string{"error": e.Message}
		}
	case AlreadyExists:
		body = map[string]string{"error": e.Message}
	case Unauthenticated:
		body = map[string]string{"detail": e.Message}
	default:
		body = map[string]string{"error": http.StatusText(http.StatusInternalServerError)}
	}

	data, err := json.Marshal(body)
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the web package's status interface.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetError returns the *Error in the chain of err, or nil.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return nil
	}
	return er
}
