package byteview

import (
	"fmt"
	"math"
	"os"

	"github.com/vvka-141/graphver/pkg/graphver"
)

// OutOfBoundsError is the panic value raised by At for invalid positions.
type OutOfBoundsError struct {
	Pos int
	Len int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("byteview: position %d out of bounds [0, %d)", e.Pos, e.Len)
}

// View is an immutable sequence of bytes with a known length.
// It is safe for concurrent readers; Close must not race with reads.
type View struct {
	data    []byte
	release func([]byte) error
	closed  bool
}

// New wraps an in-memory buffer. The caller must not modify b afterwards.
func New(b []byte) *View {
	return &View{data: b}
}

// Open maps the file at path read-only.
// Errors wrap graphver.ErrIO.
func Open(path string) (*View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", graphver.ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", graphver.ErrIO, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", graphver.ErrIO, path)
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: %s is empty", graphver.ErrIO, path)
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: %s is too large to map (%d bytes)", graphver.ErrIO, path, size)
	}

	data, release, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: map %s: %w", graphver.ErrIO, path, err)
	}
	return &View{data: data, release: release}, nil
}

// Len returns the number of bytes in the view.
func (v *View) Len() int {
	return len(v.data)
}

// At returns the byte at pos. It panics with *OutOfBoundsError when pos is
// outside [0, Len()).
func (v *View) At(pos int) byte {
	if pos < 0 || pos >= len(v.data) {
		panic(&OutOfBoundsError{Pos: pos, Len: len(v.data)})
	}
	return v.data[pos]
}

// Bytes returns the underlying bytes. The slice must be treated as read-only;
// for mapped files writing to it faults.
func (v *View) Bytes() []byte {
	return v.data
}

// Mapped reports whether the view is backed by a memory mapping.
func (v *View) Mapped() bool {
	return v.release != nil
}

// Close releases the mapping. It is safe to call more than once.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	data := v.data
	v.data = nil
	if v.release == nil {
		return nil
	}
	if err := v.release(data); err != nil {
		return fmt.Errorf("unmap: %w", err)
	}
	return nil
}
