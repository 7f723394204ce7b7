package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-formdata/form/header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := param.Parse("test:plain")
	assert.Error(t, err)

	pv, err := param.Parse(`form-data; name="file"; filename="example.txt"`)
	require.NoError(t, err)

	assert.Equal(t, "form-data", pv.Disposition())
	assert.Equal(t, "file", pv.Name())
	assert.Equal(t, "example.txt", pv.Filename())
	assert.Equal(t, "", pv.Type())
	assert.Equal(t, map[string]string{
		"name":     "file",
		"filename": "example.txt",
	}, pv.Parameters())

	mt, err := param.Parse("text/plain; charset=UTF-8")
	require.NoError(t, err)

	assert.Equal(t, "text/plain", mt.MediaType())
	assert.Equal(t, "text", mt.Type())
	assert.Equal(t, "plain", mt.Subtype())
	assert.Equal(t, "UTF-8", mt.Charset())
	assert.Equal(t, "", mt.Boundary())

	mt, err = param.Parse("multipart/form-data; boundary=X")
	require.NoError(t, err)
	assert.Equal(t, "X", mt.Boundary())
}

func TestParse_ExtendedFilename(t *testing.T) {
	t.Parallel()

	pv, err := param.Parse(`form-data; name="f"; filename*=UTF-8''na%C3%AFve.txt`)
	require.NoError(t, err)
	assert.Equal(t, "naïve.txt", pv.Filename())
}

func TestNew(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data", map[string]string{
		"name": "username",
	})

	assert.Equal(t, "form-data", pv.Value())
	assert.Equal(t, "username", pv.Parameter(param.Name))
	assert.Equal(t, "", pv.Parameter(param.Filename))

	assert.Equal(t, map[string]string{}, param.New("text/plain").Parameters())
}

func TestModify(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data")
	assert.Equal(t, "form-data", pv.String())

	nv := param.Modify(pv,
		param.Set(param.Filename, "my file.txt"),
		param.Set(param.Name, "upload"),
	)
	assert.Equal(t, `form-data; name="upload"; filename="my file.txt"`, nv.String())
	assert.Equal(t, []byte(`form-data; name="upload"; filename="my file.txt"`), nv.Bytes())

	// the original is untouched
	assert.Equal(t, "form-data", pv.String())
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data", map[string]string{
		"zeta":         "z",
		param.Filename: `say "hi" \ bye.txt`,
		"alpha":        "a",
		param.Name:     "Zoë",
	})
	assert.Equal(t,
		`form-data; name="Zoë"; filename="say \"hi\" \\ bye.txt"; alpha="a"; zeta="z"`,
		pv.String())

	back, err := param.Parse(pv.String())
	require.NoError(t, err)
	assert.Equal(t, pv.Parameters(), back.Parameters())

	assert.Equal(t, `text/plain; charset="utf-8"`,
		param.New("text/plain", map[string]string{param.Charset: "utf-8"}).String())
}
