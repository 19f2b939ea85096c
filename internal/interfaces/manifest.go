// File: internal/interfaces/manifest.go
package interfaces

// ManifestReader provides read-only access to a fully decoded Manifest.mbdb
// catalog. Decoding is all-or-nothing: a ManifestReader only exists for
// buffers whose every record decoded cleanly.
type ManifestReader interface {
	// Records returns all records in file order (the order the backup wrote them)
	Records() []RecordReader

	// RecordCount returns the number of decoded records
	RecordCount() int

	// RecordAtOffset returns the record that began at the given byte offset
	RecordAtOffset(offset int) (RecordReader, bool)
}
