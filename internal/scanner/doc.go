// Package scanner finds length-prefixed strings in an opaque byte stream.
//
// Java object serialization, and many formats like it, write a string as a
// 16-bit big-endian length followed by the characters. The scanner does not
// parse the stream; it tests every offset for two things:
//
//   - a run of printable bytes starts there (the raw length), and
//   - the two bytes before it decode to a length no longer than that run
//     (the encoded length).
//
// When both hold, the encoded length wins and a string of that length is
// reported. Printable runs without a plausible prefix, such as text that
// happens to appear inside compressed or numeric payloads, are skipped.
//
// # Signed bytes
//
// Bytes are sign-extended before any comparison or arithmetic, so 0x80..0xFF
// count as negative. Both the printable test and the length prefix depend on
// this; see PrintableByte and EncodedLength. Results are bit-compatible with
// the legacy graph version tool and must stay that way.
//
// # Usage
//
//	s := scanner.New(view, graphver.DefaultMinStringLength)
//	for run, text := range s.Strings(0) {
//	    fmt.Println(run.Position, text)
//	}
package scanner
