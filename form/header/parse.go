package header

import (
	"errors"

	"github.com/zostay/go-formdata/form/header/field"
	"github.com/zostay/go-formdata/internal/scanner"
)

// Parse will parse a header block into a Header. The block is every header line
// of a part joined by CRLF, without the empty line that ends the block. Every
// line must be a "Name: Value" field.
//
// On failure, the error is a *field.Error whose Offset counts from the start of
// the block.
func Parse(block []byte) (*Header, error) {
	if len(block) == 0 {
		return &Header{}, nil
	}

	fields := make([]*field.Field, 0, 4)

	lines := scanner.NewLines(block)
	for lines.Scan() {
		f, err := field.Parse(lines.Bytes())
		if err != nil {
			var ferr *field.Error
			if errors.As(err, &ferr) {
				return nil, &field.Error{
					Offset: lines.Start() + ferr.Offset,
					Err:    ferr.Err,
				}
			}
			return nil, err
		}

		fields = append(fields, f)
	}

	return &Header{fields: fields}, nil
}
