package form

import (
	"errors"
	"fmt"

	"github.com/zostay/go-formdata/form/header/field"
)

// Errors that occur during parsing. Parse always returns them wrapped in a
// *ParseError, so test for them with errors.Is.
var (
	// ErrMalformedInput is returned when the buffer contains no delimiter line
	// for the boundary or its structure cannot be made sense of.
	ErrMalformedInput = errors.New("malformed multipart input")

	// ErrMalformedHeader is returned when a line of a part header is not a
	// "Name: Value" field.
	ErrMalformedHeader = field.ErrMalformedHeader

	// ErrInvalidEncoding is returned when a part header is not valid UTF-8.
	ErrInvalidEncoding = field.ErrInvalidEncoding

	// ErrUnexpectedEndOfInput is returned when the buffer ends in the middle of
	// a delimiter line or before the closing delimiter.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of multipart input")

	// ErrTooManyParts is returned when the buffer holds more parts than the
	// WithMaxParts option allows.
	ErrTooManyParts = errors.New("too many parts")

	// ErrLargeHeader is returned when a part header is longer than the
	// WithMaxHeaderLength option allows.
	ErrLargeHeader = errors.New("the header exceeds the maximum parse length")
)

// NoPart is the ParseError.Part value used when an error is not tied to any
// one part.
const NoPart = -1

// ParseError describes why Parse failed. Offset is a byte offset into the
// buffer passed to Parse. Part is the zero-based index of the part being
// parsed or NoPart.
type ParseError struct {
	Err    error
	Offset int
	Part   int
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Part == NoPart {
		return fmt.Sprintf("formdata: %v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("formdata: %v in part %d at offset %d", e.Err, e.Part, e.Offset)
}

// Unwrap returns the underlying error, one of the Err* values of this package.
func (e *ParseError) Unwrap() error {
	return e.Err
}
