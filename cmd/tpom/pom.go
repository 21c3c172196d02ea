package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tpom/internal/descriptor"
)

func (a *app) pomCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pom <publication>",
		Short: "Print the descriptor of one publication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.configure()
			if err != nil {
				return err
			}

			m, err := s.Descriptor(args[0])
			if err != nil {
				return err
			}

			data, err := descriptor.RenderBytes(m)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = a.stdout.Write(data)
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
