package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// IsInvalidArgument reports whether err was raised by argument validation.
func IsInvalidArgument(err error) bool {
	var errx Error
	return errors.As(err, &errx) && errx.Code == InvalidArgument
}

// RequireNonEmpty returns an InvalidArgument error naming the argument if value is empty.
func RequireNonEmpty(name, value string) error {
	if value == "" {
		return New(InvalidArgument, "%s must not be empty", name)
	}

	return nil
}
