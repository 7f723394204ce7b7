package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-formdata/internal/scanner"
)

type line struct {
	text       string
	start, end int
	next       int
	terminated bool
}

func collect(buf string) []line {
	var ls []line
	l := scanner.NewLines([]byte(buf))
	for l.Scan() {
		ls = append(ls, line{string(l.Bytes()), l.Start(), l.End(), l.Next(), l.Terminated()})
	}
	return ls
}

func TestLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []line{
		{"one", 0, 3, 5, true},
		{"", 5, 5, 7, true},
		{"two\nstill two", 7, 20, 22, true},
		{"", 22, 22, 22, false},
	}, collect("one\r\n\r\ntwo\nstill two\r\n"))

	assert.Equal(t, []line{
		{"no break\r", 0, 9, 9, false},
	}, collect("no break\r"))

	assert.Equal(t, []line{
		{"", 0, 0, 0, false},
	}, collect(""))
}
