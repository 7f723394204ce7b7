package form

import (
	"bytes"
	"fmt"

	"github.com/zostay/go-formdata/internal/scanner"
)

// segment is the byte range of one part, between the line break ending one
// delimiter line and the line break starting the next.
type segment struct {
	index      int
	start, end int
}

type lineKind int

const (
	contentLine lineKind = iota
	delimiterLine
	closeDelimiterLine
	partialDelimiterLine // the buffer ends partway through a delimiter line
)

var dashes = []byte("--")

// isPadding returns true if b is empty or only holds the spaces and tabs RFC
// 2046 allows between a delimiter and its line break.
func isPadding(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// classify decides what a line is. The dash argument is "--" plus the
// boundary. The line excludes its CRLF and terminated says whether there was
// one.
func classify(line, dash []byte, terminated bool) lineKind {
	if !terminated {
		// a CR at the very end could be the first half of a CRLF that got cut off
		line = bytes.TrimSuffix(line, scanner.CRLF[:1])
	}

	if !bytes.HasPrefix(line, dash) {
		if !terminated && len(line) > 0 && bytes.HasPrefix(dash, line) {
			return partialDelimiterLine
		}
		return contentLine
	}

	rest := line[len(dash):]
	switch {
	case bytes.HasPrefix(rest, dashes):
		if isPadding(rest[len(dashes):]) {
			return closeDelimiterLine
		}
	case isPadding(rest):
		if terminated {
			return delimiterLine
		}
		return partialDelimiterLine
	case !terminated && bytes.Equal(rest, dashes[:1]):
		return partialDelimiterLine
	}

	return contentLine
}

// scan finds the byte range of every part in buf. Only lines are considered,
// so a delimiter-like sequence in the middle of a line of content never splits
// a part.
func (pr *parser) scan(buf []byte, boundary string) ([]segment, error) {
	if boundary == "" {
		return nil, &ParseError{
			Err:    fmt.Errorf("%w: empty boundary", ErrMalformedInput),
			Offset: 0,
			Part:   NoPart,
		}
	}

	dash := []byte("--" + boundary)

	// open is the offset the current part starts at, or -1 until the first
	// delimiter line is seen
	open := -1
	segs := make([]segment, 0, 8)

	// closeAt finishes the open part just before the delimiter line starting
	// at the given offset. The CRLF in front of that line belongs to the
	// delimiter. An empty part shares that CRLF with its opening delimiter.
	closeAt := func(lineStart int) {
		end := lineStart - len(scanner.CRLF)
		if end < open {
			end = open
		}
		segs = append(segs, segment{index: len(segs), start: open, end: end})
	}

	lines := scanner.NewLines(buf)
	for lines.Scan() {
		switch classify(lines.Bytes(), dash, lines.Terminated()) {
		case contentLine:
			continue

		case partialDelimiterLine:
			part := NoPart
			if open >= 0 {
				part = len(segs)
			} else if !bytes.HasPrefix(lines.Bytes(), dash) {
				// a few dashes at the end are no evidence the boundary was
				// ever there
				return nil, noDelimiterError(boundary, len(buf))
			}
			return nil, &ParseError{
				Err:    ErrUnexpectedEndOfInput,
				Offset: lines.Start(),
				Part:   part,
			}

		case delimiterLine:
			if open >= 0 {
				closeAt(lines.Start())
			}

			if pr.maxParts > 0 && len(segs) >= pr.maxParts {
				return nil, &ParseError{
					Err:    ErrTooManyParts,
					Offset: lines.Start(),
					Part:   len(segs),
				}
			}

			open = lines.Next()

		case closeDelimiterLine:
			if open >= 0 {
				closeAt(lines.Start())
			}
			return segs, nil
		}
	}

	if open < 0 {
		return nil, noDelimiterError(boundary, len(buf))
	}

	return nil, &ParseError{
		Err:    fmt.Errorf("%w: missing closing delimiter", ErrUnexpectedEndOfInput),
		Offset: len(buf),
		Part:   len(segs),
	}
}

func noDelimiterError(boundary string, offset int) error {
	return &ParseError{
		Err:    fmt.Errorf("%w: no delimiter line for boundary %q", ErrMalformedInput, boundary),
		Offset: offset,
		Part:   NoPart,
	}
}
