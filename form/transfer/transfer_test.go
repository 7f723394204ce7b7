package transfer_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-formdata/form/header"
	"github.com/zostay/go-formdata/form/header/field"
	"github.com/zostay/go-formdata/form/transfer"
)

func decode(t *testing.T, cte, in string) string {
	t.Helper()

	h := header.New()
	if cte != "" {
		h = header.New(field.New(header.ContentTransferEncoding, cte))
	}

	out, err := io.ReadAll(transfer.ApplyTransferDecoding(h, strings.NewReader(in)))
	require.NoError(t, err)
	return string(out)
}

func TestApplyTransferDecoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "as is=3D", decode(t, "", "as is=3D"))
	assert.Equal(t, "as is=3D", decode(t, "8bit", "as is=3D"))
	assert.Equal(t, "as is=3D", decode(t, "x-unknown", "as is=3D"))
	assert.Equal(t, "a=b", decode(t, "quoted-printable", "a=3Db"))
	assert.Equal(t, "Hello, world!", decode(t, "Base64", "SGVsbG8s\r\nIHdvcmxkIQ=="))
}
