package output

import (
	"fmt"
	"io"
	"iter"

	"github.com/vvka-141/graphver/pkg/graphver"
)

const stringsHeader = "    OFFSET  LENGTH     RAW  ENCODED  TEXT\n"

// WriteStrings lists every string in runs, one per line, and returns how
// many were written. Lines are streamed so that dumping a large graph does
// not buffer the whole listing.
func WriteStrings(w io.Writer, runs iter.Seq2[graphver.StringRun, string]) (int, error) {
	if _, err := io.WriteString(w, stringsHeader); err != nil {
		return 0, err
	}
	n := 0
	for run, text := range runs {
		if _, err := fmt.Fprintf(w, "%10d  %6d  %6d  %7d  %s\n",
			run.Position, run.Length, run.RawLength, run.EncodedLength, text); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
