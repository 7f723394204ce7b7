package form_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-formdata/form"
)

func TestValidateBoundary(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{
		"X",
		"----WebKitFormBoundary7MA4YWxkTrZu0gW",
		"simple boundary",
		"'()+_,-./:=?",
		strings.Repeat("a", 70),
	} {
		assert.NoError(t, form.ValidateBoundary(ok), ok)
	}

	for _, bad := range []string{
		"",
		strings.Repeat("a", 71),
		"trailing ",
		"semi;colon",
		"line\r\nbreak",
		"naïve",
	} {
		assert.ErrorIs(t, form.ValidateBoundary(bad), form.ErrInvalidBoundary, bad)
	}
}

func TestGenerateBoundary(t *testing.T) {
	t.Parallel()

	a := form.GenerateBoundary()
	b := form.GenerateBoundary()

	assert.Len(t, a, 60)
	assert.NotEqual(t, a, b)
	assert.NoError(t, form.ValidateBoundary(a))
}

func TestGenerateSafeBoundary(t *testing.T) {
	t.Parallel()

	b := form.GenerateSafeBoundary([]byte("anything"), nil)
	assert.NoError(t, form.ValidateBoundary(b))
}

func TestBoundaryFromContentType(t *testing.T) {
	t.Parallel()

	b, err := form.BoundaryFromContentType("multipart/form-data; boundary=X")
	assert.NoError(t, err)
	assert.Equal(t, "X", b)

	b, err = form.BoundaryFromContentType(`Multipart/Form-Data; boundary="a b"; charset=utf-8`)
	assert.NoError(t, err)
	assert.Equal(t, "a b", b)

	_, err = form.BoundaryFromContentType("multipart/mixed; boundary=X")
	assert.ErrorIs(t, err, form.ErrNotFormData)

	_, err = form.BoundaryFromContentType("multipart/form-data")
	assert.ErrorIs(t, err, form.ErrNoBoundary)

	_, err = form.BoundaryFromContentType("")
	assert.Error(t, err)
}
