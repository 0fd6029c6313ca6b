package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DigitalSlideArchive/tifftools"
	"github.com/DigitalSlideArchive/tifftools/ops"
)

func newConcatCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:     "concat source... output",
		Aliases: []string{"merge"},
		Short:   "Concatenate several files' IFD chains into one",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, output := args[:len(args)-1], args[len(args)-1]
			if !overwrite {
				if _, err := os.Stat(output); err == nil {
					return tifftools.NewUserErrorf("%s already exists; pass --overwrite", output)
				}
			}
			infos := make([]*tifftools.Info, 0, len(sources))
			for _, src := range sources {
				info, err := tifftools.ReadFile(src)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			merged, err := ops.Concat(infos)
			if err != nil {
				return err
			}
			return tifftools.WriteFile(output, merged, tifftools.WriteOptions{})
		},
	}
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "y", false, "overwrite the output file if it exists")
	return cmd
}
