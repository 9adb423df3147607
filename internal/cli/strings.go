package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/graphver/internal/output"
	"github.com/vvka-141/graphver/internal/scanner"
)

func newStringsCmd(flags *rootFlags) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "strings <Graph.obj>",
		Short: "List every length-prefixed string the scanner accepts",
		Long: `List every string the scanner accepts, with its offset, accepted length,
raw printable length and encoded length prefix.

This is the same walk the version search performs and is mainly useful for
working out where a new graph format keeps its build properties.

Examples:
  # Dump all strings
  graphver strings Graph.obj

  # Start at an offset and only show longer strings
  graphver strings Graph.obj --offset 4096 --min-length 8

  # Find where the anchor lives
  graphver strings Graph.obj | grep MavenVersion`,
		Args: RequireGraphFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(cmd, flags, args[0], offset)
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Byte offset to start scanning at")
	return cmd
}

func runStrings(cmd *cobra.Command, flags *rootFlags, path string, offset int) error {
	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)

	cfg, err := resolveConfig(cmd, flags, logger)
	if err != nil {
		return err
	}

	view, err := openView(path, cfg, logger)
	if err != nil {
		return err
	}
	defer view.Close()

	if flags.verbose {
		logger.Verbose("Fingerprint (xxh3): %s", fingerprint(view))
	}

	s := scanner.New(view, cfg.MinStringLength)
	n, err := output.WriteStrings(cmd.OutOrStdout(), s.Strings(offset))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Verbose("%d strings found", n)
	return nil
}
