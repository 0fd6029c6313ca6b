package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DigitalSlideArchive/tifftools"
	"github.com/DigitalSlideArchive/tifftools/ops"
)

func newSetCmd() *cobra.Command {
	var overwrite bool
	var sets, unsets, setfroms []string
	cmd := &cobra.Command{
		Use:   "set source [output]",
		Short: "Add, replace, remove, or copy tags in place",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			output := source
			if len(args) == 2 {
				output = args[1]
			}
			if output == source && !overwrite {
				return tifftools.NewUserError("editing a file in place requires --overwrite")
			}
			if output != source && !overwrite {
				if _, err := os.Stat(output); err == nil {
					return tifftools.NewUserErrorf("%s already exists; pass --overwrite", output)
				}
			}

			info, err := tifftools.ReadFile(source)
			if err != nil {
				return err
			}

			directives, err := collectDirectives(info, sets, unsets, setfroms)
			if err != nil {
				return err
			}
			if err := ops.Apply(info, directives); err != nil {
				return err
			}
			return tifftools.WriteFile(output, info, tifftools.WriteOptions{})
		},
	}
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "y", false, "allow overwriting the output (or editing source in place)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, `tag[:type][,ifd]=value[,value...], repeatable`)
	cmd.Flags().StringArrayVar(&unsets, "unset", nil, "tag[,ifd] to remove, repeatable")
	cmd.Flags().StringArrayVar(&setfroms, "setfrom", nil, `tag=path[:srctag], repeatable`)
	return cmd
}

// collectDirectives turns the raw --set/--unset/--setfrom flag values
// into ops.SetDirective values, reading any --setfrom source files
// along the way.
func collectDirectives(dst *tifftools.Info, sets, unsets, setfroms []string) ([]ops.SetDirective, error) {
	var directives []ops.SetDirective
	for _, s := range sets {
		d, err := ops.ParseSetArg(s)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	for _, u := range unsets {
		d, err := ops.ParseUnsetArg(u)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	cache := map[string]*tifftools.Info{}
	for _, raw := range setfroms {
		eq := strings.IndexByte(raw, '=')
		if eq < 0 {
			return nil, tifftools.NewUserErrorf("--setfrom value %q missing '='", raw)
		}
		tag, rest := raw[:eq], raw[eq+1:]
		path, srcTag := rest, ""
		if colon := strings.IndexByte(rest, ':'); colon >= 0 {
			path, srcTag = rest[:colon], rest[colon+1:]
		}
		src, ok := cache[path]
		if !ok {
			var err error
			src, err = tifftools.ReadFile(path)
			if err != nil {
				return nil, err
			}
			cache[path] = src
		}
		directives = append(directives, ops.SetDirective{
			Tag:     tag,
			SetFrom: &ops.SetFromSource{Info: src, Tag: srcTag},
		})
	}
	return directives, nil
}
