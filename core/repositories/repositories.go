// Package repositories holds the errors every repository and store shares.
package repositories

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrUnavailable      = errors.New("store unavailable")
)
