package field_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-formdata/form/header/field"
)

func TestNew(t *testing.T) {
	t.Parallel()

	f := field.New("Content-Type", "text/plain")

	assert.Equal(t, "Content-Type", f.Name())
	assert.Equal(t, "text/plain", f.Value())
	assert.Equal(t, "Content-Type: text/plain", f.String())
	assert.Equal(t, []byte("Content-Type: text/plain"), f.Bytes())
	assert.NoError(t, f.Valid())
}

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := field.Parse([]byte(`Content-Disposition: form-data; name="username"`))
	require.NoError(t, err)
	assert.Equal(t, "Content-Disposition", f.Name())
	assert.Equal(t, `form-data; name="username"`, f.Value())

	// only the first separator splits
	f, err = field.Parse([]byte("X-Note: a: b"))
	require.NoError(t, err)
	assert.Equal(t, "X-Note", f.Name())
	assert.Equal(t, "a: b", f.Value())

	// values are not trimmed
	f, err = field.Parse([]byte("X-Pad:   padded "))
	require.NoError(t, err)
	assert.Equal(t, "  padded ", f.Value())

	f, err = field.Parse([]byte("X-Empty: "))
	require.NoError(t, err)
	assert.Equal(t, "", f.Value())

	f, err = field.Parse([]byte("X-Name: Zoë"))
	require.NoError(t, err)
	assert.Equal(t, "Zoë", f.Value())
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"no separator here",
		"Content-Type:text/plain",
		": no name",
		"",
	} {
		_, err := field.Parse([]byte(line))
		assert.ErrorIs(t, err, field.ErrMalformedHeader, line)

		var ferr *field.Error
		if assert.True(t, errors.As(err, &ferr), line) {
			assert.Equal(t, 0, ferr.Offset, line)
		}
	}
}

func TestParse_LineBreaks(t *testing.T) {
	t.Parallel()

	for line, offset := range map[string]int{
		"A: 1\n\nB: 2": 4,
		"A: 1\rB: 2":   4,
		"A\n: 1":       1,
	} {
		_, err := field.Parse([]byte(line))
		assert.ErrorIs(t, err, field.ErrMalformedHeader, line)

		var ferr *field.Error
		if assert.True(t, errors.As(err, &ferr), line) {
			assert.Equal(t, offset, ferr.Offset, line)
		}
	}
}

func TestParse_InvalidEncoding(t *testing.T) {
	t.Parallel()

	_, err := field.Parse([]byte("X-Bad: ab\xffcd"))
	assert.ErrorIs(t, err, field.ErrInvalidEncoding)

	var ferr *field.Error
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, 9, ferr.Offset)
	assert.Equal(t, "header field is not valid UTF-8 at offset 9", ferr.Error())

	// encoding is checked before the separator
	_, err = field.Parse([]byte("\xc3"))
	assert.ErrorIs(t, err, field.ErrInvalidEncoding)
}

func TestField_Valid(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, field.New("", "x").Valid(), field.ErrMalformedHeader)
	assert.ErrorIs(t, field.New("X-A", "one\r\ntwo").Valid(), field.ErrMalformedHeader)
	assert.ErrorIs(t, field.New("X\nA", "one").Valid(), field.ErrMalformedHeader)
	assert.ErrorIs(t, field.New("X: A", "one").Valid(), field.ErrMalformedHeader)
	assert.ErrorIs(t, field.New("X-A", "\xff").Valid(), field.ErrInvalidEncoding)
	assert.NoError(t, field.New("X-A", "").Valid())
}
