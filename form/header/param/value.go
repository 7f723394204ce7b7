package param

import (
	"mime"
	"sort"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

const (
	// Name is the name of the name parameter of a form-data
	// Content-Disposition header.
	Name = "name"

	// Filename is the name of the filename parameter that may be present in the
	// Content-Disposition header.
	Filename = "filename"

	// Charset is the name of the charset parameter that may be present in the
	// Content-Type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in the
	// Content-Type header.
	Boundary = "boundary"
)

// Value represents a parsed parameterized header field. A Value object is
// immutable: You cannot change it in place. However, a Modify() function is
// provided to perform transformation of a Value into a new Value.
type Value struct {
	v  string
	ps map[string]string
}

// Parse takes a header field value, parses it as a Value and returns it.
// Parameter names are lowercased. RFC 2231 extended parameters such as
// filename* are decoded into their plain names.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}

	return &Value{mt, ps}, nil
}

// New creates a new parameterized header value. At most one parameter map may
// be given.
func New(v string, ps ...map[string]string) *Value {
	pv := &Value{v, map[string]string{}}
	for _, p := range ps {
		for k, val := range p {
			pv.ps[k] = val
		}
	}
	return pv
}

// Modifier is a modification to apply to a Value when calling the Modify()
// function.
type Modifier func(*Value)

// Set is a Modifier that sets a parameter with the given name on the Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[name] = value
	}
}

// Modify clones a Value, applies the given modifications (if any) and returns
// the new Value:
//
//	v, _ := param.Parse(`form-data; name="upload"`)
//	nv := param.Modify(v, param.Set(param.Filename, "a.txt"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value, the part before the first semi-colon.
func (pv *Value) Value() string {
	return pv.v
}

// Disposition is a synonym for Value(). For a form part it should always be
// "form-data".
func (pv *Value) Disposition() string {
	return pv.v
}

// MediaType is a synonym for Value() for use with Content-Type, e.g.,
// "text/plain" or "image/png".
func (pv *Value) MediaType() string {
	return pv.v
}

// Type returns the part of MediaType() before the slash or an empty string if
// there is no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of MediaType() after the slash or an empty string if
// there is no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns the parameters as a map. Do not modify this map. If you
// need to modify it, make a copy first.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the value of the parameter with the given name.
func (pv *Value) Parameter(k string) string {
	return pv.ps[k]
}

// Name returns the "name" parameter of a Content-Disposition value.
func (pv *Value) Name() string {
	return pv.ps[Name]
}

// Filename returns the "filename" parameter of a Content-Disposition value.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// Charset returns the "charset" parameter of a Content-Type value.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the "boundary" parameter of a Content-Type value.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// String returns the serialized value including all parameters. The name and
// filename parameters come first, in that order, and the rest follow sorted by
// name. Every parameter value is written as a quoted-string with backslash and
// double quote escaped. Non-ASCII text is written as is rather than with the
// RFC 2231 extended syntax, which form-data does not allow.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		if k != Name && k != Filename {
			pks = append(pks, k)
		}
	}
	sort.Strings(pks)

	for _, k := range []string{Filename, Name} {
		if _, ok := pv.ps[k]; ok {
			pks = append([]string{k}, pks...)
		}
	}

	var sb strings.Builder
	sb.WriteString(pv.v)
	for _, k := range pks {
		sb.WriteString("; ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(quoteEscaper.Replace(pv.ps[k]))
		sb.WriteString(`"`)
	}

	return sb.String()
}

// Bytes returns String() as bytes.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	c := Value{v: pv.v, ps: make(map[string]string, len(pv.ps))}
	for k, v := range pv.ps {
		c.ps[k] = v
	}
	return &c
}
