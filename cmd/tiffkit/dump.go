package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DigitalSlideArchive/tifftools"
	"github.com/DigitalSlideArchive/tifftools/ops"
)

func newDumpCmd() *cobra.Command {
	var max int
	var asJSON, asYAML bool
	cmd := &cobra.Command{
		Use:   "dump source...",
		Short: "Print every source file's tag tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && asYAML {
				return tifftools.NewUserError("--json and --yaml are mutually exclusive")
			}
			format := ops.FormatText
			if asJSON {
				format = ops.FormatJSON
			} else if asYAML {
				format = ops.FormatYAML
			}
			for _, path := range args {
				info, err := tifftools.ReadFile(path)
				if err != nil {
					return err
				}
				out, err := ops.Dump(info, ops.DumpOptions{Format: format, Max: max})
				if err != nil {
					return err
				}
				if len(args) > 1 {
					fmt.Printf("== %s ==\n", path)
				}
				fmt.Println(out)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&max, "max", 0, "maximum array values to print per field (0 = unlimited)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "render as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "render as YAML")
	return cmd
}
