package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per Kind. Constructed errors unwrap to the sentinel
// of their Kind so that errors.Is can be used for classification.
var (
	ErrNotFound            = errors.New("object not found")
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("conflict")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrBusinessRule        = errors.New("business rule violated")
	ErrUnexpected          = errors.New("unexpected error")
)

// Kind classifies a failure so that callers can choose how to react
// (and transport layers can choose a response code) without parsing messages.
type Kind int

const (
	// Unexpected covers everything the taxonomy does not anticipate:
	// store failures, programming errors. It is the zero value on purpose,
	// so an unclassified error is never mistaken for a recoverable one.
	Unexpected Kind = iota

	// NotFound means a referenced entity is absent.
	NotFound

	// Validation means the input is malformed or inconsistent,
	// including an inactive product or a non-positive quantity.
	Validation

	// Conflict means a uniqueness constraint would be violated.
	Conflict

	// ConcurrencyConflict means a supplied version token is stale.
	// The caller must re-fetch and retry with the current token.
	ConcurrencyConflict

	// BusinessRule means a domain rule forbids the operation,
	// such as changing the status of a non-Pending order.
	BusinessRule
)

// String returns the symbolic name of the kind.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case Validation:
		return "Validation"
	case Conflict:
		return "Conflict"
	case ConcurrencyConflict:
		return "ConcurrencyConflict"
	case BusinessRule:
		return "BusinessRule"
	default:
		return "Unexpected"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case Validation:
		return ErrValidation
	case Conflict:
		return ErrConflict
	case ConcurrencyConflict:
		return ErrConcurrencyConflict
	case BusinessRule:
		return ErrBusinessRule
	default:
		return ErrUnexpected
	}
}

// Error is a classified, human-readable failure.
// The message is safe to surface to API callers as-is.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New creates a classified error with the given message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewWithCause creates a classified error wrapping an underlying cause.
// The cause is included in the formatted message for logging; classification
// still follows the Kind, not the cause.
func NewWithCause(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Error formats the message, appending the cause when present.
func (e *Error) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", e.Message, e.Cause))
	}
	return sanitize(e.Message)
}

// Unwrap returns the sentinel error for the Kind,
// making errs errors compatible with errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf extracts the Kind from an error chain.
// Errors that are not *errs.Error classify as Unexpected.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return Unexpected
}

// sanitize keeps error messages single-line for log friendliness.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
