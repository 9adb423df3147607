package fixtures

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// tcString is the Java serialization stream tag that precedes a short string.
const tcString = 0x74

// GraphBuilder provides a fluent API for hand-encoding byte streams that look
// like serialized OpenTripPlanner graphs: length-prefixed strings separated by
// bytes that never form a valid string on their own.
//
// Example usage:
//
//	data := NewGraphBuilder().
//	    Filler(64).
//	    String("org.opentripplanner.common.MavenVersion").
//	    String("0123456789abcdef0123456789abcdef01234567").
//	    String("1.2.3-SNAPSHOT").
//	    Bytes()
type GraphBuilder struct {
	buf bytes.Buffer
}

// NewGraphBuilder creates an empty builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{}
}

// Raw appends bytes verbatim.
func (b *GraphBuilder) Raw(p ...byte) *GraphBuilder {
	b.buf.Write(p)
	return b
}

// String appends s behind a 16-bit big-endian length prefix.
func (b *GraphBuilder) String(s string) *GraphBuilder {
	return b.Prefixed(len(s), s)
}

// Prefixed appends s behind an arbitrary length prefix, which lets tests
// declare a length that disagrees with the text.
func (b *GraphBuilder) Prefixed(length int, s string) *GraphBuilder {
	var prefix [2]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(length))
	b.buf.Write(prefix[:])
	b.buf.WriteString(s)
	return b
}

// TCString appends s the way ObjectOutputStream writes a short string:
// a TC_STRING tag, the length, then the bytes.
func (b *GraphBuilder) TCString(s string) *GraphBuilder {
	b.buf.WriteByte(tcString)
	return b.String(s)
}

// Text appends s with no prefix. The preceding bytes decide whether the
// scanner accepts it.
func (b *GraphBuilder) Text(s string) *GraphBuilder {
	b.buf.WriteString(s)
	return b
}

// Filler appends n bytes of binary noise that contain no printable run.
func (b *GraphBuilder) Filler(n int) *GraphBuilder {
	pattern := []byte{0x00, 0xff, 0x01, 0x9c, 0x10, 0xe3}
	for i := 0; i < n; i++ {
		b.buf.WriteByte(pattern[i%len(pattern)])
	}
	return b
}

// Len returns the number of bytes written so far, which is the offset the
// next appended byte will have.
func (b *GraphBuilder) Len() int {
	return b.buf.Len()
}

// Bytes returns the encoded stream.
func (b *GraphBuilder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// WriteFile writes the stream to Graph.obj in a fresh temp dir and returns
// its path.
func (b *GraphBuilder) WriteFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Graph.obj")
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// SampleCommit is a well-formed 40 digit commit hash.
const SampleCommit = "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678"

// SampleGraph returns a stream shaped like a real graph header: filler, the
// MavenVersion class descriptor, some unrelated property strings, the commit
// and the version text.
func SampleGraph(commit, version string) *GraphBuilder {
	return NewGraphBuilder().
		Filler(37).
		TCString("org.opentripplanner.routing.graph.Graph").
		Filler(11).
		TCString("org.opentripplanner.common.MavenVersion").
		Filler(5).
		TCString("buildTime").
		TCString("Ljava/lang/String;").
		Filler(3).
		TCString(commit).
		Filler(2).
		TCString(version).
		Filler(19)
}
