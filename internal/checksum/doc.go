// Package checksum fingerprints graph files.
//
// A fingerprint is the xxh3-64 digest of the bytes the scanner saw, printed
// as 16 lowercase hex digits. After decompression that is the inflated
// content, so a gzip and a plain copy of the same graph share a fingerprint.
// It is reported with --verbose and in JSON output so a version report can be
// tied to one exact file.
//
// xxh3 is not a cryptographic hash; it identifies files, it does not
// authenticate them.
//
// # Example Usage
//
//	calculator := checksum.New()
//	fp := calculator.Fingerprint(view.Bytes())
package checksum
