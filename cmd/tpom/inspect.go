package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"tpom/internal/archive"
	"tpom/internal/descriptor"
	"tpom/internal/resolve"
)

const embeddedPattern = resolve.MetadataRoot + "/*/*/" + resolve.DescriptorName

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <jar>",
		Short: "List the descriptors embedded in a jar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := archive.Entries(args[0])
			if err != nil {
				return err
			}

			for _, e := range entries {
				if ok, _ := doublestar.Match(embeddedPattern, e); !ok {
					continue
				}

				data, err := archive.ReadEntry(args[0], e)
				if err != nil {
					return err
				}

				m, err := descriptor.Parse(data)
				if err != nil {
					return fmt.Errorf("%s: %w", e, err)
				}

				fmt.Fprintf(a.stdout, "%s\t%s\n", e, m.Coordinates())
			}

			return nil
		},
	}
}
