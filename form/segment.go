package form

import (
	"bytes"
	"fmt"

	"github.com/zostay/go-formdata/form/header"
	"github.com/zostay/go-formdata/form/header/field"
	"github.com/zostay/go-formdata/internal/scanner"
)

var (
	headerBreak = []byte("\x0d\x0a\x0d\x0a") // \r\n\r\n
	bareBreak   = []byte("\x0a\x0a")         // \n\n
)

// parseSegment turns the byte range of one part into a Part. The header block
// ends at the first empty line. A part that starts with an empty line has an
// empty header. A part made only of header lines followed by the delimiter has
// an empty body. Anything else with no empty line at all is all body.
func (pr *parser) parseSegment(buf []byte, seg segment) (*Part, error) {
	data := buf[seg.start:seg.end]

	var block, body []byte
	switch ix := bytes.Index(data, headerBreak); {
	case bytes.HasPrefix(data, scanner.CRLF):
		body = data[len(scanner.CRLF):]

	case ix >= 0:
		block = data[:ix]
		body = data[ix+len(headerBreak):]

	case headerOnly(data):
		// the empty line ending the header is the CRLF in front of the
		// delimiter, which belongs to the delimiter
		block = data[:len(data)-len(scanner.CRLF)]
		body = data[len(data):]

	default:
		// Header fields ended by LF LF rather than CRLF CRLF would otherwise
		// end up silently treated as body.
		if ix := bytes.Index(data, bareBreak); ix >= 0 && bytes.Contains(data[:ix], field.Separator) {
			return nil, bareBreakError(seg, ix)
		}
		body = data
	}

	if ix := bytes.Index(block, bareBreak); ix >= 0 {
		return nil, bareBreakError(seg, ix)
	}

	if pr.maxHeaderLen > 0 && len(block) > pr.maxHeaderLen {
		return nil, &ParseError{
			Err:    ErrLargeHeader,
			Offset: seg.start,
			Part:   seg.index,
		}
	}

	h, err := header.Parse(block)
	if err != nil {
		return nil, fieldError(err, seg.start, seg.index)
	}

	if pr.copyBodies {
		body = append(make([]byte, 0, len(body)), body...)
	} else {
		// keep appends to the body from writing into the input
		body = body[:len(body):len(body)]
	}

	return &Part{Header: *h, body: body}, nil
}

// headerOnly reports whether data is nothing but header lines, each ending in
// CRLF.
func headerOnly(data []byte) bool {
	if !bytes.HasSuffix(data, scanner.CRLF) {
		return false
	}

	lines := scanner.NewLines(data[:len(data)-len(scanner.CRLF)])
	for lines.Scan() {
		if bytes.Index(lines.Bytes(), field.Separator) <= 0 {
			return false
		}
	}
	return true
}

func bareBreakError(seg segment, ix int) error {
	return &ParseError{
		Err:    fmt.Errorf("%w: header block ends with bare line feeds", ErrMalformedInput),
		Offset: seg.start + ix,
		Part:   seg.index,
	}
}
