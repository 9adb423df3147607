package scanner

import (
	"iter"

	"github.com/vvka-141/graphver/pkg/graphver"
)

// Scanner walks a byte stream left to right looking for validated strings.
// A Scanner holds no cursor of its own, so one value can serve any number of
// independent searches.
type Scanner struct {
	b         Bytes
	minLength int
}

// New creates a Scanner that only reports strings whose validated length is
// strictly greater than minLength.
func New(b Bytes, minLength int) *Scanner {
	return &Scanner{b: b, minLength: minLength}
}

// MinLength returns the threshold the scanner was created with.
func (s *Scanner) MinLength() int {
	return s.minLength
}

// Len returns the size of the underlying stream.
func (s *Scanner) Len() int {
	return s.b.Len()
}

// RunAt describes the candidate string at pos, accepted or not.
func (s *Scanner) RunAt(pos int) graphver.StringRun {
	run := graphver.StringRun{
		Position:      pos,
		RawLength:     RawLength(s.b, pos),
		EncodedLength: EncodedLength(s.b, pos),
	}
	if run.EncodedLength <= run.RawLength {
		run.Length = run.EncodedLength
	}
	return run
}

// FindNext returns the first string at or after start whose validated length
// exceeds the threshold. Every offset is tried, one byte at a time, because a
// genuine string may begin in the middle of a longer printable run.
func (s *Scanner) FindNext(start int) (graphver.StringRun, bool) {
	if start < 0 {
		start = 0
	}
	for pos := start; pos < s.b.Len(); pos++ {
		// Same outcome as ValidatedLength(pos) > minLength, but the printable
		// run is only measured as far as the prefix asks for.
		encoded := EncodedLength(s.b, pos)
		if encoded <= s.minLength || !s.printableFor(pos, encoded) {
			continue
		}
		return s.RunAt(pos), true
	}
	return graphver.StringRun{}, false
}

// printableFor reports whether the n bytes starting at pos are all printable.
func (s *Scanner) printableFor(pos, n int) bool {
	if pos+n > s.b.Len() {
		return false
	}
	for i := pos; i < pos+n; i++ {
		if !PrintableByte(s.b.At(i)) {
			return false
		}
	}
	return true
}

// Decode materializes the run's bytes, one byte per character.
// Returns "" for rejected runs.
func (s *Scanner) Decode(run graphver.StringRun) string {
	if !run.Accepted() || run.Position < 0 || run.End() > s.b.Len() {
		return ""
	}
	buf := make([]byte, run.Length)
	for i := range buf {
		buf[i] = s.b.At(run.Position + i)
	}
	return string(buf)
}

// Runs yields every string from start to the end of the stream. Each search
// resumes just past the previous string. The sequence is finite and can be
// abandoned at any point; starting over means calling Runs again.
func (s *Scanner) Runs(start int) iter.Seq[graphver.StringRun] {
	return func(yield func(graphver.StringRun) bool) {
		pos := start
		for {
			run, ok := s.FindNext(pos)
			if !ok || !yield(run) {
				return
			}
			pos = run.End()
			if pos <= run.Position {
				pos = run.Position + 1
			}
		}
	}
}

// Strings is Runs paired with each run's decoded text.
func (s *Scanner) Strings(start int) iter.Seq2[graphver.StringRun, string] {
	return func(yield func(graphver.StringRun, string) bool) {
		for run := range s.Runs(start) {
			if !yield(run, s.Decode(run)) {
				return
			}
		}
	}
}
