package form

import (
	"bytes"
	"io"

	"github.com/zostay/go-formdata/form/header"
	"github.com/zostay/go-formdata/form/transfer"
)

// Part is one part of a multipart/form-data body: a header and a body.
type Part struct {
	// Header holds the fields of the part in their original order.
	header.Header

	body []byte
}

// NewPart builds a part for use with a Buffer. The body is not copied.
func NewPart(h *header.Header, body []byte) *Part {
	p := &Part{body: body}
	if h != nil {
		p.Header = *h
	}
	return p
}

// GetHeader returns the header of the part.
func (p *Part) GetHeader() *header.Header {
	return &p.Header
}

// Body returns the body exactly as it appeared in the input. Unless the
// CopyBodies option was used, it shares storage with the buffer given to Parse.
// Do not modify it.
func (p *Part) Body() []byte {
	return p.body
}

// Size returns the length of the body in bytes.
func (p *Part) Size() int {
	return len(p.body)
}

// Name returns the form field name from Content-Disposition, or an empty string
// if there is none.
func (p *Part) Name() string {
	n, _ := p.GetName()
	return n
}

// Filename returns the filename from Content-Disposition, or an empty string if
// there is none.
func (p *Part) Filename() string {
	fn, _ := p.GetFilename()
	return fn
}

// ContentType returns the media type from Content-Type. As RFC 7578 says, a
// part without one is "text/plain".
func (p *Part) ContentType() string {
	mt, err := p.GetMediaType()
	if err != nil || mt == "" {
		return "text/plain"
	}
	return mt
}

// IsFile returns true if the part carries a filename parameter.
func (p *Part) IsFile() bool {
	return p.Filename() != ""
}

// Reader returns a reader over the raw body.
func (p *Part) Reader() io.Reader {
	return bytes.NewReader(p.body)
}

// DecodedReader returns a reader over the body with any
// Content-Transfer-Encoding removed. The body itself is left untouched.
func (p *Part) DecodedReader() io.Reader {
	return transfer.ApplyTransferDecoding(&p.Header, p.Reader())
}

// WriteTo writes the header fields, the empty line ending the header, and the
// body to w. Delimiter lines are written by the Buffer, not here.
func (p *Part) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.Header.String()+"\r\n")
	total := int64(n)
	if err != nil {
		return total, err
	}

	n, err = w.Write(p.body)
	total += int64(n)
	return total, err
}
