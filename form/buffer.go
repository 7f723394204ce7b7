package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zostay/go-formdata/form/header"
	"github.com/zostay/go-formdata/form/header/field"
	"github.com/zostay/go-formdata/form/header/param"
)

var (
	// ErrBoundaryInBody is returned by WriteTo when the boundary set with
	// SetBoundary starts a line in one of the bodies.
	ErrBoundaryInBody = errors.New("boundary occurs in a part body")

	// ErrBadField is returned by WriteTo when a header field cannot be written
	// so that it parses back the same.
	ErrBadField = errors.New("header field cannot be written")
)

// Buffer provides tools for constructing a multipart/form-data body. Add parts
// to it and then call WriteTo() or Bytes():
//
//	var buf form.Buffer
//	buf.AddField("username", "john_doe")
//	buf.AddFile("file", "example.txt", "text/plain", []byte("Hello, world!"))
//	body, err := buf.Bytes()
//	req.Header.Set("Content-Type", buf.ContentType())
//
// The zero value is ready to use. A Buffer is not safe for concurrent use.
type Buffer struct {
	boundary string
	parts    []*Part
}

// Add appends one or more parts.
func (b *Buffer) Add(parts ...*Part) {
	b.parts = append(b.parts, parts...)
}

// AddField appends a plain form field and returns the new part.
func (b *Buffer) AddField(name, value string) *Part {
	h := header.New(
		field.New(header.ContentDisposition, disposition(name).String()),
	)

	p := NewPart(h, []byte(value))
	b.Add(p)
	return p
}

// AddFile appends a file upload and returns the new part. If contentType is
// empty, application/octet-stream is used.
func (b *Buffer) AddFile(name, filename, contentType string, body []byte) *Part {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	cd := param.Modify(disposition(name), param.Set(param.Filename, filename))
	h := header.New(
		field.New(header.ContentDisposition, cd.String()),
		field.New(header.ContentType, contentType),
	)

	p := NewPart(h, body)
	b.Add(p)
	return p
}

func disposition(name string) *param.Value {
	return param.New(header.FormData, map[string]string{param.Name: name})
}

// Len returns the number of parts added so far.
func (b *Buffer) Len() int {
	return len(b.parts)
}

// SetBoundary sets the boundary to use instead of a generated one.
func (b *Buffer) SetBoundary(boundary string) error {
	if err := ValidateBoundary(boundary); err != nil {
		return err
	}
	b.boundary = boundary
	return nil
}

// Boundary returns the boundary. If none has been set, a boundary that is safe
// for the parts added so far is generated and kept.
func (b *Buffer) Boundary() string {
	if b.boundary == "" {
		bodies := make([][]byte, len(b.parts))
		for i, p := range b.parts {
			bodies[i] = p.Body()
		}
		b.boundary = GenerateSafeBoundary(bodies...)
	}
	return b.boundary
}

// ContentType returns the Content-Type header value to send with the body.
func (b *Buffer) ContentType() string {
	boundary := b.Boundary()
	if strings.ContainsAny(boundary, `()<>@,;:\"/[]?= `) {
		boundary = `"` + boundary + `"`
	}
	return MultipartFormData + "; boundary=" + boundary
}

// FormData returns the parts added so far as a FormData.
func (b *Buffer) FormData() *FormData {
	return &FormData{parts: append([]*Part(nil), b.parts...)}
}

// check makes sure the output will parse back into the same parts.
func (b *Buffer) check(boundary string) error {
	for i, p := range b.parts {
		for _, f := range p.Fields() {
			if err := f.Valid(); err != nil {
				return fmt.Errorf("%w: part %d: %v", ErrBadField, i, err)
			}
		}

		if collides(boundary, p.Body()) {
			return fmt.Errorf("%w: part %d", ErrBoundaryInBody, i)
		}
	}
	return nil
}

// WriteTo writes the complete body: each part preceded by its delimiter line
// and the closing delimiter at the end.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	boundary := b.Boundary()
	if err := b.check(boundary); err != nil {
		return 0, err
	}

	var total int64
	write := func(s string) error {
		n, err := io.WriteString(w, s)
		total += int64(n)
		return err
	}

	for i, p := range b.parts {
		delim := "--" + boundary + "\r\n"
		if i > 0 {
			delim = "\r\n" + delim
		}
		if err := write(delim); err != nil {
			return total, err
		}

		n, err := p.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	closing := "--" + boundary + "--\r\n"
	if len(b.parts) > 0 {
		closing = "\r\n" + closing
	}
	err := write(closing)
	return total, err
}

// Bytes returns the complete body as a slice of bytes.
func (b *Buffer) Bytes() ([]byte, error) {
	out := &bytes.Buffer{}
	if _, err := b.WriteTo(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
