package command

import "errors"

// Kinds of command failure. Use errors.Is against these.
var (
	ErrEmptyDescription = errors.New("empty description")
	ErrMissingIndex     = errors.New("missing task number")
	ErrInvalidIndex     = errors.New("invalid task number")
	ErrIndexOutOfRange  = errors.New("task number out of range")
	ErrMissingKeyword   = errors.New("missing search keyword")
	ErrMissingSchedule  = errors.New("missing schedule")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrDateParse        = errors.New("unparseable date")
	ErrMultiLine        = errors.New("more than one line")
	ErrReservedText     = errors.New("reserved separator in task text")
)

// Error is a recoverable, user-facing failure of one input line.
// Message is meant to be shown as is.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
