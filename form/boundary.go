package form

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-formdata/form/header/param"
	"github.com/zostay/go-formdata/internal/scanner"
)

// MultipartFormData is the media type of a form submitted as multipart.
const MultipartFormData = "multipart/form-data"

// Errors related to boundaries.
var (
	// ErrInvalidBoundary is returned when a boundary breaks the rules of RFC
	// 2046 section 5.1.1.
	ErrInvalidBoundary = errors.New("invalid boundary")

	// ErrNoBoundary is returned by BoundaryFromContentType when the boundary
	// parameter is missing.
	ErrNoBoundary = errors.New("the boundary parameter is missing from Content-Type")

	// ErrNotFormData is returned by BoundaryFromContentType when the media type
	// is not multipart/form-data.
	ErrNotFormData = errors.New("content type is not multipart/form-data")
)

// GenerateBoundary will generate a random boundary that is probably unique in
// most circumstances.
func GenerateBoundary() string {
	var buf [30]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf[:])
}

// GenerateSafeBoundary will generate a random boundary that is guaranteed not
// to start a line in any of the given bodies. Use this when the parts are known
// ahead of time. This is likely to be total overkill, but in case you're
// paranoid.
func GenerateSafeBoundary(bodies ...[]byte) string {
	for {
		boundary := GenerateBoundary()
		if !collides(boundary, bodies...) {
			return boundary
		}
	}
}

// collides returns true if any line of any body would be read as a delimiter
// line for the boundary.
func collides(boundary string, bodies ...[]byte) bool {
	dash := []byte("--" + boundary)
	for _, body := range bodies {
		lines := scanner.NewLines(body)
		for lines.Scan() {
			// every body is followed by a CRLF once written
			if classify(lines.Bytes(), dash, true) != contentLine {
				return true
			}
		}
	}
	return false
}

// ValidateBoundary checks a boundary against RFC 2046: one to seventy
// characters from a restricted set, not ending in a space.
func ValidateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 70 {
		return fmt.Errorf("%w: length %d", ErrInvalidBoundary, len(boundary))
	}

	if strings.HasSuffix(boundary, " ") {
		return fmt.Errorf("%w: ends in a space", ErrInvalidBoundary)
	}

	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?', ' ':
			continue
		}
		return fmt.Errorf("%w: character %q", ErrInvalidBoundary, b)
	}

	return nil
}

// BoundaryFromContentType pulls the boundary out of a Content-Type header value
// such as `multipart/form-data; boundary=X`.
func BoundaryFromContentType(contentType string) (string, error) {
	pv, err := param.Parse(contentType)
	if err != nil {
		return "", err
	}

	if pv.MediaType() != MultipartFormData {
		return "", fmt.Errorf("%w: %s", ErrNotFormData, pv.MediaType())
	}

	if pv.Boundary() == "" {
		return "", ErrNoBoundary
	}

	return pv.Boundary(), nil
}
