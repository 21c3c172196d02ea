package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"tpom/internal/build"
	"tpom/internal/diagnostic"
	"tpom/internal/project"
	"tpom/internal/resolve"
)

// bindingDump is the --dump view of one binding.
type bindingDump struct {
	Publication string
	GroupID     string
	ArtifactID  string
	Version     string
	Jar         string
	Entry       string
}

func (a *app) checkCmd() *cobra.Command {
	var dump, quiet bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems in the build description without writing jars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diags := &diagnostic.Diagnostics{}

			bf, err := project.LoadFile(a.cfg.BuildFilePath())
			if err != nil {
				return err
			}

			diags.Merge(*project.Validate(bf))

			if diags.IsValid() {
				opts := build.DefaultOptions()
				opts.Dir = a.cfg.Dir

				s := build.NewSession(opts, a.logger)
				if err := s.Configure(bf); err != nil {
					diags.AddError("configure", err.Error(), "", "")
				} else {
					diags.Merge(*s.Check())

					if dump {
						spew.Fdump(a.stdout, dumpBindings(s))
					}
				}
			}

			if err := diags.Report(a.stdout, !quiet); err != nil {
				return err
			}

			if diags.HasErrors() {
				return fmt.Errorf("check failed: %s", diags.Summary())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump resolved bindings")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "omit info diagnostics")

	return cmd
}

func dumpBindings(s *build.Session) []bindingDump {
	var out []bindingDump

	for _, b := range s.Registry().Bindings() {
		pub := b.Publication()
		out = append(out, bindingDump{
			Publication: pub.Name(),
			GroupID:     pub.GroupID(),
			ArtifactID:  pub.ArtifactID(),
			Version:     pub.Version(),
			Jar:         b.Target().Name(),
			Entry:       resolve.DescriptorPath(pub.GroupID(), pub.ArtifactID()),
		})
	}

	return out
}
