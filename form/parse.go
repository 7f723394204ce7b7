package form

import (
	"errors"

	"github.com/zostay/go-formdata/form/header/field"
)

// Constants related to Parse() options.
const (
	// DefaultMaxHeaderLength is the default maximum byte length of the header
	// block of a single part. Zero means there is no limit.
	DefaultMaxHeaderLength = 0

	// DefaultMaxParts is the default maximum number of parts. Zero means there
	// is no limit.
	DefaultMaxParts = 0
)

type parser struct {
	maxHeaderLen int
	maxParts     int
	copyBodies   bool
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxHeaderLen: DefaultMaxHeaderLength,
	maxParts:     DefaultMaxParts,
	copyBodies:   false,
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength is a ParseOption that sets the maximum size of the header
// block of any one part. A longer header fails with ErrLargeHeader. Setting
// this to a value less than or equal to 0 removes the limit, which is the
// default.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithMaxParts is a ParseOption that sets the maximum number of parts. More
// parts fail with ErrTooManyParts. Setting this to a value less than or equal
// to 0 removes the limit, which is the default.
func WithMaxParts(n int) ParseOption {
	return func(pr *parser) { pr.maxParts = n }
}

// CopyBodies is a ParseOption that copies the body of every part out of the
// input buffer. Without it, every body is a sub-slice of the input and the
// input must be kept alive and unmodified for as long as the bodies are used.
func CopyBodies() ParseOption {
	return func(pr *parser) { pr.copyBodies = true }
}

// Parse decodes a fully buffered multipart/form-data body into its parts. The
// boundary is the value of the boundary parameter of the Content-Type, without
// the leading "--".
//
// Parsing happens in two phases. First, the buffer is scanned line by line for
// delimiter lines: "--" plus the boundary at the very start of the buffer or
// right after a CRLF, followed by a CRLF, or "--" plus the boundary plus "--"
// for the closing delimiter. Bytes resembling a delimiter anywhere else are
// content. Anything before the first delimiter and after the closing delimiter
// is discarded.
//
// Second, each part is split at the first empty line into a header block and a
// body. The header block is parsed one "Name: Value" field per line. A part
// without any empty line has no header and the whole part is its body. The
// body is never decoded.
//
// On success, a complete *FormData is returned. On failure, nil and a
// *ParseError are returned. No partial result is ever returned.
//
// Parse keeps no state between calls and does not modify buf, so the same
// buffer may be parsed from several goroutines at once.
func Parse(buf []byte, boundary string, opts ...ParseOption) (*FormData, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	segs, err := pr.scan(buf, boundary)
	if err != nil {
		return nil, err
	}

	parts := make([]*Part, len(segs))
	for i, seg := range segs {
		p, err := pr.parseSegment(buf, seg)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}

	return &FormData{parts: parts}, nil
}

// fieldError converts an error from the header parser into a ParseError.
func fieldError(err error, base, part int) error {
	var ferr *field.Error
	if errors.As(err, &ferr) {
		return &ParseError{Err: ferr.Err, Offset: base + ferr.Offset, Part: part}
	}
	return &ParseError{Err: err, Offset: base, Part: part}
}
