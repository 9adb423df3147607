package scanner

// Bytes is the read-only input the scanner walks. *byteview.View satisfies it.
// At may panic for positions outside [0, Len()); the scanner never asks for one.
type Bytes interface {
	Len() int
	At(pos int) byte
}

const (
	minPrintable = 32
	maxPrintable = 128
)

// IsPrintable reports whether a widened byte value lies in [32, 128].
// The upper bound is 128 rather than 126, which also admits DEL (127).
func IsPrintable(c int) bool {
	return c >= minPrintable && c <= maxPrintable
}

// PrintableByte applies IsPrintable to b read as a signed byte. Every byte
// from 0x80 up is negative and therefore not printable.
func PrintableByte(b byte) bool {
	return IsPrintable(signed(b))
}

// RawLength counts the consecutive printable bytes starting at pos.
func RawLength(b Bytes, pos int) int {
	n := 0
	for i := pos; i < b.Len(); i++ {
		if !PrintableByte(b.At(i)) {
			break
		}
		n++
	}
	return n
}

// EncodedLength reads the big-endian 16-bit length stored in the two bytes
// before pos. Both bytes are sign-extended first, so the result is negative
// whenever the high byte is 0x80 or above, and 256 less than the unsigned
// value when only the low byte is. Returns 0 when pos < 2.
func EncodedLength(b Bytes, pos int) int {
	if pos < 2 || pos > b.Len() {
		return 0
	}
	return 256*signed(b.At(pos-2)) + signed(b.At(pos-1))
}

// ValidatedLength returns the encoded length at pos when it does not exceed
// the raw printable length, and 0 otherwise.
//
// The encoded length can still be shorter than the text actually intended
// when a neighbouring field is also printable; that imprecision is part of
// the heuristic.
func ValidatedLength(b Bytes, pos int) int {
	encoded := EncodedLength(b, pos)
	if encoded <= RawLength(b, pos) {
		return encoded
	}
	return 0
}

func signed(b byte) int {
	return int(int8(b))
}
