package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrExport     = errors.New("export failed")
)

// Wrap prefixes err with the handler operation name.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind wraps a sentinel kind with a detail message.
func NewKind(op string, kind error, detail string) error {
	if detail == "" {
		return Wrap(op, kind)
	}
	return fmt.Errorf("%s: %w: %s", op, kind, detail)
}
