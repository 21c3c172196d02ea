package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tpom/internal/build"
	"tpom/internal/config"
	"tpom/internal/project"
)

const appName = "tpom"

var version = "dev"

// app carries state shared by subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Embed Maven descriptors into jars",
		Long: `tpom generates a pom.xml for each publication named in the build
description and embeds it into a jar at META-INF/maven/<groupId>/<artifactId>/pom.xml.

Configuration is read from flags, TPOM_* environment variables and
.tpom/config.yaml in the project directory.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: <dir>/.tpom/config.yaml)")
	flags.StringP("file", "f", "", "build description (default: tpom.yaml)")
	flags.StringP("dir", "C", "", "project directory (default: .)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.Bool("reproducible", true, "pin jar entry timestamps")

	_ = a.v.BindPFlag("file", flags.Lookup("file"))
	_ = a.v.BindPFlag("dir", flags.Lookup("dir"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("reproducible", flags.Lookup("reproducible"))

	cmd.AddCommand(
		a.jarCmd(),
		a.checkCmd(),
		a.pomCmd(),
		a.inspectCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
			},
		},
	)

	return cmd
}

func (a *app) init(*cobra.Command, []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(a.stderr)

	return nil
}

// loadBuild reads and structurally validates the build description.
func (a *app) loadBuild() (*project.BuildFile, error) {
	path := a.cfg.BuildFilePath()

	bf, err := project.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := project.Validate(bf)
	for _, w := range diags.Warnings {
		a.logger.Warn(w.Message, slog.String("code", w.Code), slog.String("file", path))
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid build description %s: %w", path, diags.Error())
	}

	return bf, nil
}

// configure loads the build description into a new session.
func (a *app) configure() (*build.Session, error) {
	bf, err := a.loadBuild()
	if err != nil {
		return nil, err
	}

	opts := build.DefaultOptions()
	opts.Dir = a.cfg.Dir
	opts.Writer.Reproducible = a.cfg.Reproducible

	s := build.NewSession(opts, a.logger)
	if err := s.Configure(bf); err != nil {
		return nil, err
	}

	return s, nil
}
