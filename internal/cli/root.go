package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/graphver/internal/logging"
	"github.com/vvka-141/graphver/pkg/graphver"
)

const rootLong = `graphver finds the OpenTripPlanner commit and version that built a
Graph.obj file. It does not deserialize the graph: it scans the raw bytes for
length-prefixed strings, finds the MavenVersion marker and reads the commit
hash and version text that follow it.

Output:
  <fileVersion>
  <commit>...</commit>
  <version>...</version>
  </fileVersion>

Exit Codes:
  0  - Success
  1  - Usage error (wrong argument count or invalid flags)
  2  - Graph file could not be opened, mapped or decompressed
  3  - MavenVersion marker not found
  4  - Marker found but commit and version could not be extracted
  5  - Invalid configuration
  6  - Panic or unexpected internal error`

// rootFlags holds flag values shared by all commands.
type rootFlags struct {
	verbose    bool
	json       bool
	minLength  int
	anchor     string
	decompress string
	configPath string
}

func newRootCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "graphver [flags] <Graph.obj>",
		Short:         "Find the OpenTripPlanner version that built a graph file",
		Long:          rootLong,
		Args:          RequireGraphFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, flags, args[0])
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", graphver.ErrUsage, err)
	})

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.IntVar(&flags.minLength, "min-length", graphver.DefaultMinStringLength, "Only consider strings longer than this many bytes")
	pf.StringVar(&flags.anchor, "anchor", graphver.DefaultAnchor, "Marker string the fields are searched after")
	pf.StringVar(&flags.decompress, "decompress", graphver.DecompressAuto, "Input compression: auto, none, gzip or zstd")
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ./"+graphver.ConfigFileName+" if present)")

	cmd.Flags().BoolVar(&flags.json, "json", false, "Output as JSON with offsets and file fingerprint")

	cmd.AddCommand(newStringsCmd(flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the command line in os.Args.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs graphver with args, writing results to stdout and
// diagnostics to stderr. The returned error is already reported; callers only
// map it to an exit code with graphver.ExitCodeForError.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "--version" {
		printVersionInfo(stdout, stderr)
		return nil
	}

	flags := &rootFlags{}
	cmd := newRootCmd(flags)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		reportError(newLogger(stderr, flags.verbose), err)
	}
	return err
}

func newLogger(w io.Writer, verbose bool) *logging.ConsoleLogger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = logging.ColorEnabled(f)
	}
	return logging.NewWriterLogger(w, verbose, color)
}

// reportError prints the one-line diagnostic for each error class.
func reportError(logger *logging.ConsoleLogger, err error) {
	switch {
	case errors.Is(err, graphver.ErrUsage):
		logger.Error("%v", err)
		logger.Info("Please use: graphver Graph.obj")
		logger.Info("Where Graph.obj is an OpenTripPlanner graph file, and we will")
		logger.Info("attempt to find the version of OpenTripPlanner which created it.")
	case errors.Is(err, graphver.ErrIO):
		logger.Error("Could not read graph file: %v", err)
	case errors.Is(err, graphver.ErrAnchorNotFound):
		logger.Error("Sorry, was not able to find Graph.obj OpenTripPlanner version.")
		logger.Verbose("%v", err)
	case errors.Is(err, graphver.ErrExtraction):
		logger.Error("Sorry, was not able to find Graph.obj OpenTripPlanner version, although a MavenVersion marker was found; the file format has probably changed.")
		logger.Verbose("%v", err)
	default:
		logger.Error("%v", err)
	}
}
