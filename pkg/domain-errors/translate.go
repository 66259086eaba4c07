package domainerrors

import (
	"context"
	"errors"

	"zoo/pkg/platform/sentinel"
)

// FromStore translates a store error into a coded domain error. Errors that
// already carry a code pass through unchanged; msg is used as the
// user-facing message for everything else.
func FromStore(err error, msg string) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return Wrap(err, CodeNotFound, msg)
	case errors.Is(err, sentinel.ErrConflict):
		return Wrap(err, CodeConflict, "concurrent update, please retry")
	case errors.Is(err, sentinel.ErrInvalidState):
		return Wrap(err, CodeInvalidState, msg)
	case errors.Is(err, sentinel.ErrInsufficientStock):
		return Wrap(err, CodeInsufficientStock, msg)
	case errors.Is(err, sentinel.ErrUnavailable):
		return Wrap(err, CodeUnavailable, "service unavailable, please retry later")
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, CodeTimeout, "request timed out")
	}
	return Wrap(err, CodeInternal, msg)
}
