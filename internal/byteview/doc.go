// Package byteview provides a read-only, bounds-checked view over the raw
// bytes of a graph file.
//
// On Linux, macOS and the BSDs the file is mapped with mmap(2) so that multi-gigabyte
// graphs are scanned without being copied into the heap. Other platforms
// read the file into memory. Compressed graphs (gzip, zstd) are inflated
// into an in-memory view by OpenDecoded.
//
// # Lifetime
//
// A View obtained from Open or OpenDecoded must be closed:
//
//	v, err := byteview.Open("Graph.obj")
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
// Accessing a position outside [0, Len()) panics with *OutOfBoundsError.
// Such an access is a programming error in the caller, never a property of
// the input file.
package byteview
