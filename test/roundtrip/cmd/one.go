package cmd

import (
	"bytes"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-formdata/form"
)

var oneCmd = &cobra.Command{
	Use:   "one file",
	Short: "Shows the diff of a single multipart body round-trip",
	Args:  cobra.ExactArgs(1),
	RunE:  RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

// RunOne parses a file, writes the parts back out with the same boundary, and
// prints a patch from the original to the rewritten bytes. Preamble, epilogue,
// and transport padding are not kept, so they show up in the patch.
func RunOne(cmd *cobra.Command, args []string) error {
	path := args[0]
	orig, b, fd, err := load(path)
	if err != nil {
		return err
	}

	var buf form.Buffer
	if err := buf.SetBoundary(b); err != nil {
		return err
	}
	buf.Add(fd.Parts()...)

	rt, err := buf.Bytes()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path = %s\n", path)

	if bytes.Equal(orig, rt) {
		fmt.Fprintln(out, "identical")
		return nil
	}

	logger.WithField("path", path).Warn("round-trip differs from original")

	fmt.Fprint(out, patch(orig, rt))
	return nil
}

// patch diffs line by line. Each line is swapped for a single rune before
// diffing, so bytes that are not valid UTF-8 reach the patch untouched and come
// out percent-escaped instead of as replacement characters.
func patch(orig, rt []byte) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(string(orig), string(rt))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)
	return dmp.PatchToText(dmp.PatchMake(string(orig), diffs))
}
