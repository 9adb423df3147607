package output

import (
	"fmt"
	"io"

	"github.com/vvka-141/graphver/pkg/graphver"
)

// Placeholder is printed in place of a field that was not found.
const Placeholder = "null"

// WriteXML writes v as
//
//	<fileVersion>
//	<commit>...</commit>
//	<version>...</version>
//	</fileVersion>
//
// Values are written as found, without escaping, and absent values become
// Placeholder.
func WriteXML(w io.Writer, v *graphver.ExtractedVersion) error {
	_, err := fmt.Fprintf(w, "<fileVersion>\n<commit>%s</commit>\n<version>%s</version>\n</fileVersion>\n",
		orPlaceholder(v.Commit), orPlaceholder(v.Version))
	return err
}

func orPlaceholder(s *string) string {
	if s == nil {
		return Placeholder
	}
	return *s
}
