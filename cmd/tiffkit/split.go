package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DigitalSlideArchive/tifftools"
	"github.com/DigitalSlideArchive/tifftools/ops"
)

func newSplitCmd() *cobra.Command {
	var subifds, overwrite bool
	cmd := &cobra.Command{
		Use:   "split source [prefix]",
		Short: "Split a multi-IFD file into one file per IFD",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			prefix := strings.TrimSuffix(source, filepath.Ext(source))
			if len(args) == 2 {
				prefix = args[1]
			}
			info, err := tifftools.ReadFile(source)
			if err != nil {
				return err
			}
			outputs := ops.Split(info, subifds)
			for i, out := range outputs {
				path := fmt.Sprintf("%s_%d.tif", prefix, i)
				if !overwrite {
					if _, statErr := os.Stat(path); statErr == nil {
						return tifftools.NewUserErrorf("%s already exists; pass --overwrite", path)
					}
				}
				if err := tifftools.WriteFile(path, out, tifftools.WriteOptions{}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&subifds, "subifds", false, "also split each top-level IFD's SubIFDs entry into its own file")
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "y", false, "overwrite existing output files")
	return cmd
}
