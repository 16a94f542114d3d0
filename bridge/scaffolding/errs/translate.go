package errs

import (
	"errors"

	"github.com/jrazmi/join/core/repositories"
	"github.com/jrazmi/join/sdk/validation"
)

// Translate converts an error returned by a repository or use case into an
// *Error. Field errors keep their field map.
func Translate(err error) *Error {
	var fe validation.FieldErrors
	switch {
	case errors.As(err, &fe):
		return newError(InvalidArgument, fe.Error(), fe)
	case errors.Is(err, repositories.ErrNotFound):
		return newError(NotFound, err.Error(), nil)
	case errors.Is(err, repositories.ErrUnavailable):
		return newError(Unavailable, err.Error(), nil)
	default:
		return newError(Internal, err.Error(), nil)
	}
}
