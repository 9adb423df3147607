package locator

import (
	"fmt"
	"regexp"

	"github.com/vvka-141/graphver/internal/logging"
	"github.com/vvka-141/graphver/internal/scanner"
	"github.com/vvka-141/graphver/pkg/graphver"
)

var (
	hexPattern     = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)
)

// match decides whether a decoded string is the one being searched for.
type match func(run graphver.StringRun, text string) bool

// IsCommitHash reports whether a string of the given accepted length looks
// like a full git commit hash.
func IsCommitHash(length int, text string) bool {
	return length == graphver.CommitHashLength && hexPattern.MatchString(text)
}

// IsVersionText reports whether text starts with digits.digits.digits.
// Anything after that prefix, such as -SNAPSHOT, is allowed.
func IsVersionText(text string) bool {
	return versionPattern.MatchString(text)
}

// Option configures a Locator.
type Option func(*Locator)

// WithAnchor replaces the default MavenVersion marker.
func WithAnchor(anchor string) Option {
	return func(l *Locator) {
		l.anchor = anchor
	}
}

// WithLogger sets the logger used for verbose search diagnostics.
func WithLogger(logger graphver.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Locator runs the anchor-then-fields search. Every call starts its own scan,
// so a Locator can be reused and its methods called in any order.
type Locator struct {
	s      *scanner.Scanner
	anchor string
	logger graphver.Logger
}

// New creates a Locator over s.
func New(s *scanner.Scanner, opts ...Option) *Locator {
	l := &Locator{
		s:      s,
		anchor: graphver.DefaultAnchor,
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Anchor returns the marker string the locator searches for.
func (l *Locator) Anchor() string {
	return l.anchor
}

func (l *Locator) find(from int, m match) (graphver.StringRun, string, bool) {
	for run, text := range l.s.Strings(from) {
		if m(run, text) {
			return run, text, true
		}
	}
	return graphver.StringRun{}, "", false
}

// FindAnchor returns the position of the first string equal to the anchor.
// Returns graphver.ErrAnchorNotFound when the stream ends first.
func (l *Locator) FindAnchor() (int, error) {
	run, _, ok := l.find(0, func(_ graphver.StringRun, text string) bool {
		return text == l.anchor
	})
	if !ok {
		return -1, fmt.Errorf("%w: %q", graphver.ErrAnchorNotFound, l.anchor)
	}
	l.logger.Verbose("Found anchor %s at offset %d", l.anchor, run.Position)
	return run.Position, nil
}

// FindCommit returns the first commit hash at or after from, and its offset.
func (l *Locator) FindCommit(from int) (string, int, bool) {
	run, text, ok := l.find(from, func(run graphver.StringRun, text string) bool {
		return IsCommitHash(run.Length, text)
	})
	if !ok {
		l.logger.Verbose("No commit hash after offset %d", from)
		return "", -1, false
	}
	l.logger.Verbose("Found commit %s at offset %d", text, run.Position)
	return text, run.Position, true
}

// FindVersion returns the first version text at or after from, and its offset.
func (l *Locator) FindVersion(from int) (string, int, bool) {
	run, text, ok := l.find(from, func(_ graphver.StringRun, text string) bool {
		return IsVersionText(text)
	})
	if !ok {
		l.logger.Verbose("No version text after offset %d", from)
		return "", -1, false
	}
	l.logger.Verbose("Found version %s at offset %d", text, run.Position)
	return text, run.Position, true
}

// Locate runs both phases.
//
// Errors:
//   - graphver.ErrAnchorNotFound when the anchor is absent.
//   - graphver.ErrExtraction when the anchor is present but neither field
//     was found, or the field search failed unexpectedly.
func (l *Locator) Locate() (*graphver.ExtractedVersion, error) {
	anchor, err := l.FindAnchor()
	if err != nil {
		return nil, err
	}

	v, err := l.fields(anchor)
	if err != nil {
		return nil, err
	}
	if v.Empty() {
		return nil, fmt.Errorf("%w: no commit or version after anchor at offset %d", graphver.ErrExtraction, anchor)
	}
	return v, nil
}

func (l *Locator) fields(anchor int) (v *graphver.ExtractedVersion, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("%w: %v", graphver.ErrExtraction, r)
		}
	}()

	v = &graphver.ExtractedVersion{
		AnchorPosition:  anchor,
		CommitPosition:  -1,
		VersionPosition: -1,
	}
	if commit, pos, ok := l.FindCommit(anchor); ok {
		v.Commit = &commit
		v.CommitPosition = pos
	}
	if version, pos, ok := l.FindVersion(anchor); ok {
		v.Version = &version
		v.VersionPosition = pos
	}
	return v, nil
}
