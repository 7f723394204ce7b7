package field

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Errors returned while parsing a header line.
var (
	// ErrMalformedHeader is returned when a header line has no ": " separator
	// or has an empty name.
	ErrMalformedHeader = errors.New("malformed header field")

	// ErrInvalidEncoding is returned when a header line is not valid UTF-8.
	ErrInvalidEncoding = errors.New("header field is not valid UTF-8")
)

// Separator is the byte sequence that splits a field name from its value.
var Separator = []byte(": ")

// Error reports a header parse failure together with the offset of the
// problem, counted from the start of whatever was handed to the parser.
type Error struct {
	Offset int
	Err    error
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap returns ErrMalformedHeader or ErrInvalidEncoding.
func (e *Error) Unwrap() error {
	return e.Err
}

// Field is a single header name and value.
type Field struct {
	name  string
	value string
}

// New constructs a field from a name and value. No validation is performed.
func New(name, value string) *Field {
	return &Field{name, value}
}

// Parse splits a single header line at the first ": " into a name and a value.
// The line must not include its line break. The value is kept exactly as it
// appears after the separator, including any further colons or spaces.
//
// A line that is not valid UTF-8 fails with an *Error wrapping
// ErrInvalidEncoding whose Offset is the first bad byte. A stray CR or LF
// fails with an *Error wrapping ErrMalformedHeader at the offset of that byte.
// A line without a separator, or with nothing before it, fails with an *Error
// wrapping ErrMalformedHeader at Offset 0.
func Parse(line []byte) (*Field, error) {
	if !utf8.Valid(line) {
		return nil, &Error{invalidOffset(line), ErrInvalidEncoding}
	}

	if ix := bytes.IndexAny(line, "\r\n"); ix >= 0 {
		return nil, &Error{ix, ErrMalformedHeader}
	}

	ix := bytes.Index(line, Separator)
	if ix <= 0 {
		return nil, &Error{0, ErrMalformedHeader}
	}

	return &Field{
		name:  string(line[:ix]),
		value: string(line[ix+len(Separator):]),
	}, nil
}

// invalidOffset locates the first byte that does not begin a valid UTF-8
// sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return len(b)
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Value returns the field value.
func (f *Field) Value() string {
	return f.value
}

// String returns the field as it would appear on a header line.
func (f *Field) String() string {
	return f.name + string(Separator) + f.value
}

// Bytes returns the field as it would appear on a header line.
func (f *Field) Bytes() []byte {
	return []byte(f.String())
}

// Valid returns an error if the field cannot be written out and parsed back
// unchanged. Names must be non-empty and neither part may contain CR or LF.
// The name must not contain the separator either, since the value would be
// split in the wrong place on the way back in.
func (f *Field) Valid() error {
	switch {
	case f.name == "":
		return fmt.Errorf("%w: empty field name", ErrMalformedHeader)
	case strings.ContainsAny(f.name, "\r\n"), strings.ContainsAny(f.value, "\r\n"):
		return fmt.Errorf("%w: field %q contains a line break", ErrMalformedHeader, f.name)
	case strings.Contains(f.name, string(Separator)):
		return fmt.Errorf("%w: field name %q contains the separator", ErrMalformedHeader, f.name)
	case !utf8.ValidString(f.name) || !utf8.ValidString(f.value):
		return fmt.Errorf("%w: field %q", ErrInvalidEncoding, f.name)
	}
	return nil
}
