package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vbp1/dirfixture/internal/log"
	"github.com/vbp1/dirfixture/tempdir"
)

// Config holds values of CLI flags.
type Config struct {
	Dir     string
	Sub     string
	Ignore  []string
	Lock    bool
	Debug   bool
	Verbose bool
}

// NewRootCmd builds the dircheck command.
func NewRootCmd() *cobra.Command {
	cfg := &Config{}
	cmd := &cobra.Command{
		Use:   "dircheck [flags] NAME...",
		Short: "Compare the entries of a directory with an expected list of names",
		Long: "dircheck lists the immediate entries of --dir (or of --sub below it), drops\n" +
			"names given with --ignore and compares the rest with NAME... ignoring order.\n" +
			"The directory is never modified.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Dir, "dir", "", "Directory to inspect (required)")
	f.StringVar(&cfg.Sub, "sub", "", "Slash-separated subdirectory of --dir to inspect instead")
	f.StringSliceVar(&cfg.Ignore, "ignore", nil, "Entry name to leave out of the comparison (repeatable)")
	f.BoolVar(&cfg.Lock, "lock", false, "Hold the directory lock shared with test fixtures while comparing")
	f.BoolVar(&cfg.Debug, "debug", false, "Enable debug output")
	f.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

// Execute parses flags and runs the root command.
func Execute() error { return execute(NewRootCmd()) }

// execute runs cmd and writes a failure to its error stream as is.
// The standard log package is not used: Setup hands it to slog, whose
// level would drop the report.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return err
}

func run(cmd *cobra.Command, cfg *Config, expected []string) error {
	logger := log.Setup(cmd.ErrOrStderr(), cfg.Debug, cfg.Verbose)

	opts := []tempdir.Option{
		tempdir.WithPath(cfg.Dir),
		tempdir.WithIgnore(cfg.Ignore...),
		tempdir.WithLogger(logger),
	}
	if cfg.Lock {
		opts = append(opts, tempdir.WithLock())
	}

	var copts []tempdir.CompareOption
	if sub := strings.Trim(filepath.ToSlash(cfg.Sub), "/"); sub != "" {
		copts = append(copts, tempdir.At(strings.Split(sub, "/")...))
	}

	return tempdir.Run(func(d *tempdir.Dir) error {
		logger.Info("comparing", "dir", d.Path(), "sub", cfg.Sub, "expected", len(expected))
		if err := d.Check(expected, copts...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}, opts...)
}
