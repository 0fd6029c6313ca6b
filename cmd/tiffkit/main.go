// Command tiffkit inspects and rewrites TIFF and BigTIFF files: dump
// their tag tree, split a multi-page file into single-page files,
// concatenate several files into one, or edit tags in place.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DigitalSlideArchive/tifftools"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tiffkit:", err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "tiffkit",
		Short:         "Inspect and rewrite TIFF/BigTIFF files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				if l, err := zap.NewDevelopment(); err == nil {
					tifftools.SetLogger(l.Sugar())
				}
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newDumpCmd(), newSplitCmd(), newConcatCmd(), newSetCmd())
	return cmd
}

// exitCodeFor maps an error to a process exit code: 0 success
// (handled by Execute's nil-error path), 3 malformed input, 2 bad
// user input/arguments, 1 everything else (I/O, internal).
func exitCodeFor(err error) int {
	var terr *tifftools.Error
	if errors.As(err, &terr) {
		switch terr.Kind {
		case tifftools.KindFormat, tifftools.KindBigTiffRequired:
			return 3
		case tifftools.KindUser:
			return 2
		default:
			return 1
		}
	}
	return 1
}
