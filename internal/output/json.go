package output

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/vvka-141/graphver/pkg/graphver"
)

// Report is the JSON form of a locate result. Absent fields are null.
type Report struct {
	Commit        *string `json:"commit"`
	Version       *string `json:"version"`
	AnchorOffset  int     `json:"anchorOffset"`
	CommitOffset  *int    `json:"commitOffset"`
	VersionOffset *int    `json:"versionOffset"`
	File          string  `json:"file"`
	Size          int     `json:"size"`
	Fingerprint   string  `json:"xxh3"`
}

// NewReport builds a Report for the file at path.
func NewReport(path string, size int, fingerprint string, v *graphver.ExtractedVersion) Report {
	r := Report{
		Commit:       v.Commit,
		Version:      v.Version,
		AnchorOffset: v.AnchorPosition,
		File:         path,
		Size:         size,
		Fingerprint:  fingerprint,
	}
	if v.Commit != nil {
		r.CommitOffset = offset(v.CommitPosition)
	}
	if v.Version != nil {
		r.VersionOffset = offset(v.VersionPosition)
	}
	return r
}

func offset(pos int) *int {
	return &pos
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
