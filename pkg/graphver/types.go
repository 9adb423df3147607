package graphver

// StringRun describes a candidate length-prefixed string inside a byte view.
type StringRun struct {
	// Position is the offset of the first character.
	Position int

	// RawLength is the number of consecutive printable bytes at Position.
	RawLength int

	// EncodedLength is the signed big-endian 16-bit prefix stored in the two
	// bytes before Position, or 0 when Position < 2.
	EncodedLength int

	// Length is the accepted length. It equals EncodedLength for accepted
	// runs and is 0 for rejected ones.
	Length int
}

// End returns the offset just past the accepted string, which is where the
// next search starts.
func (r StringRun) End() int {
	return r.Position + r.Length
}

// Accepted reports whether the run holds at least one character.
func (r StringRun) Accepted() bool {
	return r.Length >= 1 && r.Length <= r.RawLength
}

// ExtractedVersion is the build provenance found in a graph file.
// Commit and Version are nil when the corresponding search came up empty.
type ExtractedVersion struct {
	Commit  *string
	Version *string

	// Offsets of the anchor and of each found field. -1 when absent.
	AnchorPosition  int
	CommitPosition  int
	VersionPosition int
}

// Empty reports whether neither field was found.
func (v *ExtractedVersion) Empty() bool {
	return v.Commit == nil && v.Version == nil
}
