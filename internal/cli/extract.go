package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/graphver/internal/locator"
	"github.com/vvka-141/graphver/internal/output"
	"github.com/vvka-141/graphver/internal/scanner"
)

// runExtract locates the version block in path and prints it. Nothing is
// written to stdout unless the whole extraction succeeds.
func runExtract(cmd *cobra.Command, flags *rootFlags, path string) error {
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

	var fp string
	if flags.verbose || flags.json {
		fp = fingerprint(view)
		logger.Verbose("Fingerprint (xxh3): %s", fp)
	}

	s := scanner.New(view, cfg.MinStringLength)
	loc := locator.New(s, locator.WithAnchor(cfg.Anchor), locator.WithLogger(logger))

	v, err := loc.Locate()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if flags.json {
		err = output.WriteJSON(&buf, output.NewReport(path, view.Len(), fp, v))
	} else {
		err = output.WriteXML(&buf, v)
	}
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
