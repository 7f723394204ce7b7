package form

import (
	"errors"
)

// Errors returned by FormData lookups.
var (
	// ErrNoSuchPart is returned when no part has the requested name.
	ErrNoSuchPart = errors.New("no such form part")

	// ErrManyParts is returned when one part was asked for by name, but several
	// parts have that name. The first is returned alongside it.
	ErrManyParts = errors.New("many form parts found")
)

// FormData is the ordered list of parts found by Parse. It is not modified
// after it is built.
type FormData struct {
	parts []*Part
}

// Len returns the number of parts.
func (fd *FormData) Len() int {
	return len(fd.parts)
}

// Part returns the nth part. It panics when n is out of range.
func (fd *FormData) Part(n int) *Part {
	return fd.parts[n]
}

// Parts returns a copy of the list of parts, in the order they appeared.
func (fd *FormData) Parts() []*Part {
	ps := make([]*Part, len(fd.parts))
	copy(ps, fd.parts)
	return ps
}

// GetAll returns every part with the given form field name, in order. Names
// are compared exactly, as form field names are case-sensitive.
func (fd *FormData) GetAll(name string) []*Part {
	var ps []*Part
	for _, p := range fd.parts {
		if p.Name() == name {
			ps = append(ps, p)
		}
	}
	return ps
}

// Get returns the part with the given form field name.
//
// If there is none, it returns nil with ErrNoSuchPart. If there are several,
// it returns the first with ErrManyParts.
func (fd *FormData) Get(name string) (*Part, error) {
	ps := fd.GetAll(name)
	switch len(ps) {
	case 0:
		return nil, ErrNoSuchPart
	case 1:
		return ps[0], nil
	default:
		return ps[0], ErrManyParts
	}
}

// Value returns the body of the named part as a string. It returns the same
// errors as Get.
func (fd *FormData) Value(name string) (string, error) {
	p, err := fd.Get(name)
	if p == nil {
		return "", err
	}
	return string(p.Body()), err
}

// Values collects the bodies of every named part that is not a file, keyed by
// name, in the manner of url.Values. Parts without a name are skipped.
func (fd *FormData) Values() map[string][]string {
	vs := make(map[string][]string)
	for _, p := range fd.parts {
		n := p.Name()
		if n == "" || p.IsFile() {
			continue
		}
		vs[n] = append(vs[n], string(p.Body()))
	}
	return vs
}
