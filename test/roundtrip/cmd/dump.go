package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump file",
		Short: "Lists the parts of a multipart body with their headers",
		Args:  cobra.ExactArgs(1),
		RunE:  RunDump,
	}

	showBodies bool
)

func init() {
	dumpCmd.Flags().BoolVar(&showBodies, "bodies", false, "print each body quoted")
	rootCmd.AddCommand(dumpCmd)
}

// RunDump prints every part of the file.
func RunDump(cmd *cobra.Command, args []string) error {
	_, _, fd, err := load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range fd.Parts() {
		fmt.Fprintf(out, "part %d: %d bytes\n", i, p.Size())
		for _, f := range p.Fields() {
			fmt.Fprintf(out, "  %s\n", f)
		}
		if showBodies {
			fmt.Fprintf(out, "  %q\n", p.Body())
		}
	}
	return nil
}
