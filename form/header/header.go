package header

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"

	"github.com/zostay/go-formdata/form/header/field"
	"github.com/zostay/go-formdata/form/header/param"
)

// Errors returned by various header methods.
var (
	// ErrNoSuchField is returned when the named field is not present.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned when a single value was asked for, but the
	// field appears more than once. The first value is returned alongside it.
	ErrManyFields = errors.New("many header fields found")
)

// Header names commonly found on form parts.
const (
	ContentDisposition      = "Content-Disposition"
	ContentType             = "Content-Type"
	ContentTransferEncoding = "Content-Transfer-Encoding"
)

// FormData is the disposition every part of a multipart/form-data body is
// expected to carry.
const FormData = "form-data"

// Header is an ordered list of fields. The zero value is an empty header. A
// Header is not modified after it is built, so it is safe to share.
type Header struct {
	fields []*field.Field
}

// New returns a header holding the given fields in the given order.
func New(fields ...*field.Field) *Header {
	fs := make([]*field.Field, len(fields))
	copy(fs, fields)
	return &Header{fs}
}

// foldName returns the key used to compare header names. Full Unicode case
// folding is used because the names have only been checked to be UTF-8, not
// ASCII.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Len returns the number of fields.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field. It panics when n is out of range.
func (h *Header) GetField(n int) *field.Field {
	return h.fields[n]
}

// Fields returns a copy of the list of fields.
func (h *Header) Fields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// GetIndexesNamed returns the indexes of every field with the given name.
func (h *Header) GetIndexesNamed(name string) []int {
	key := foldName(name)
	var ixs []int
	for i, f := range h.fields {
		if foldName(f.Name()) == key {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// Get returns the value of the named field.
//
// If the field is missing, it returns an empty string with ErrNoSuchField. If
// there are several, it returns the first with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	v := h.fields[ixs[0]].Value()
	if len(ixs) > 1 {
		return v, ErrManyFields
	}

	return v, nil
}

// GetAll returns the values of every field with the given name, in order.
func (h *Header) GetAll(name string) []string {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return nil
	}

	vs := make([]string, len(ixs))
	for i, ix := range ixs {
		vs[i] = h.fields[ix].Value()
	}
	return vs
}

// GetParamValue parses the named field as a parameterized value.
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	v, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	return param.Parse(v)
}

// GetDisposition returns the parsed Content-Disposition field.
func (h *Header) GetDisposition() (*param.Value, error) {
	return h.GetParamValue(ContentDisposition)
}

// GetContentType returns the parsed Content-Type field.
func (h *Header) GetContentType() (*param.Value, error) {
	return h.GetParamValue(ContentType)
}

// GetName returns the form field name from Content-Disposition.
func (h *Header) GetName() (string, error) {
	pv, err := h.GetDisposition()
	if err != nil {
		return "", err
	}
	return pv.Name(), nil
}

// GetFilename returns the filename from Content-Disposition, if any.
func (h *Header) GetFilename() (string, error) {
	pv, err := h.GetDisposition()
	if err != nil {
		return "", err
	}
	return pv.Filename(), nil
}

// GetMediaType returns the media type from Content-Type, e.g., "text/plain".
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return pv.MediaType(), nil
}

// GetTransferEncoding returns the lowercased Content-Transfer-Encoding.
func (h *Header) GetTransferEncoding() (string, error) {
	v, err := h.Get(ContentTransferEncoding)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

// String returns the header lines joined and terminated by CRLF, without the
// empty line that ends a header block.
func (h *Header) String() string {
	var sb strings.Builder
	for _, f := range h.fields {
		sb.WriteString(f.String())
		sb.WriteString("\r\n")
	}
	return sb.String()
}
