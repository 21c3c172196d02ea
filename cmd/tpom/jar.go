package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) jarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jar",
		Short: "Write jars with embedded descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.configure()
			if err != nil {
				return err
			}

			if err := s.Close(); err != nil {
				return err
			}

			files, err := s.Execute(cmd.Context())
			if err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintln(a.stdout, f)
			}

			return nil
		},
	}
}
