package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zostay/go-formdata/form"
	"github.com/zostay/go-formdata/internal/scanner"
)

var (
	rootCmd = &cobra.Command{
		Use:               "roundtrip",
		Short:             "Tools for testing multipart/form-data parsing and round-tripping",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	boundary    string
	contentType string
	verbose     bool

	logger = logrus.New()
)

// ErrNoBoundary is returned when no boundary was given and none could be found
// on the first delimiter-looking line of the input.
var ErrNoBoundary = errors.New("no boundary given and none found in the input")

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&boundary, "boundary", "b", "", "boundary token, without the leading --")
	flags.StringVarP(&contentType, "content-type", "t", "", "Content-Type header to take the boundary from")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debugging details to stderr")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// sniffBoundary takes the boundary from the first line that starts with "--".
func sniffBoundary(buf []byte) string {
	lines := scanner.NewLines(buf)
	for lines.Scan() {
		line := lines.Bytes()
		if bytes.HasPrefix(line, []byte("--")) {
			b := bytes.TrimRight(line[2:], " \t")
			b = bytes.TrimSuffix(b, []byte("--"))
			return string(b)
		}
	}
	return ""
}

// resolveBoundary picks the boundary from the flags or, failing that, the
// input itself.
func resolveBoundary(buf []byte) (string, error) {
	switch {
	case boundary != "":
		return boundary, nil
	case contentType != "":
		return form.BoundaryFromContentType(contentType)
	}

	b := sniffBoundary(buf)
	if b == "" {
		return "", ErrNoBoundary
	}

	logger.WithField("boundary", b).Debug("boundary taken from input")
	return b, nil
}

// load reads and parses the named file.
func load(path string) ([]byte, string, *form.FormData, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, "", nil, err
	}

	b, err := resolveBoundary(buf)
	if err != nil {
		return nil, "", nil, err
	}

	fd, err := form.Parse(buf, b)
	if err != nil {
		var perr *form.ParseError
		if errors.As(err, &perr) {
			logger.WithFields(logrus.Fields{
				"path":   path,
				"offset": perr.Offset,
				"part":   perr.Part,
			}).Error("parse failed")
		}
		return nil, "", nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.WithFields(logrus.Fields{
		"path":     path,
		"bytes":    len(buf),
		"boundary": b,
		"parts":    fd.Len(),
	}).Debug("parsed")

	return buf, b, fd, nil
}

// Execute runs the roundtrip command.
func Execute() error {
	return rootCmd.Execute()
}
