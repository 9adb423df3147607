package graphver

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	v, err := loc.Locate()
//	if errors.Is(err, graphver.ErrAnchorNotFound) {
//	    // Probably not an OpenTripPlanner graph
//	}
var (
	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")

	// ErrIO indicates the input file could not be opened, mapped or decoded.
	ErrIO = errors.New("could not read graph file")

	// ErrAnchorNotFound indicates the anchor marker string is absent.
	ErrAnchorNotFound = errors.New("anchor marker not found")

	// ErrExtraction indicates the anchor was found but neither field could be extracted.
	ErrExtraction = errors.New("version extraction failed")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitExtractionError (4) for unclassified errors, since anything
// unexpected happens after the file was successfully opened.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrAnchorNotFound):
		return ExitAnchorNotFound
	case errors.Is(err, ErrExtraction):
		return ExitExtractionError
	}

	return ExitExtractionError
}
