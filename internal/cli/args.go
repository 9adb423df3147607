package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/graphver/pkg/graphver"
)

// RequireGraphFile validates that exactly one graph file argument is provided.
// The error wraps graphver.ErrUsage so it maps to the usage exit code.
func RequireGraphFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: missing required argument <Graph.obj> (usage: %s)", graphver.ErrUsage, cmd.UseLine())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", graphver.ErrUsage, len(args))
	}
	return nil
}
