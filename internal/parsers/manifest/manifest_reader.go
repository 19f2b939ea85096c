package manifest

import (
	"bytes"
	"fmt"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
	"github.com/digitalsleuth/go-mbdb/internal/types"
)

// manifestReader implements the ManifestReader interface.
type manifestReader struct {
	records  []interfaces.RecordReader
	byOffset map[int]interfaces.RecordReader
}

// NewManifestReader decodes a complete Manifest.mbdb buffer into a catalog.
// Decoding is strictly sequential: each record's start is wherever the
// previous record ended, so records cannot be decoded independently or in
// parallel. The decode is all-or-nothing; any structural error invalidates
// the whole buffer because a mis-aligned cursor makes every subsequent
// record garbage.
func NewManifestReader(data []byte) (interfaces.ManifestReader, error) {
	if len(data) < len(types.MBDBMagic) || !bytes.Equal(data[:len(types.MBDBMagic)], []byte(types.MBDBMagic)) {
		return nil, fmt.Errorf("buffer does not begin with %q: %w", types.MBDBMagic, types.ErrInvalidSignature)
	}
	if len(data) < types.MBDBHeaderSize {
		return nil, fmt.Errorf("buffer of %d bytes shorter than %d-byte header: %w",
			len(data), types.MBDBHeaderSize, types.ErrTruncatedInput)
	}

	mr := &manifestReader{
		byOffset: make(map[int]interfaces.RecordReader),
	}

	// Two unknown header bytes after the magic are skipped, not validated.
	offset := types.MBDBHeaderSize
	for offset < len(data) {
		start := offset
		raw, next, err := parseRecord(data, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to parse record at offset %d: %w", start, err)
		}

		record := newRecordReader(raw)
		mr.records = append(mr.records, record)
		mr.byOffset[start] = record
		offset = next
	}

	return mr, nil
}

func (mr *manifestReader) Records() []interfaces.RecordReader {
	records := make([]interfaces.RecordReader, len(mr.records))
	copy(records, mr.records)
	return records
}

func (mr *manifestReader) RecordCount() int {
	return len(mr.records)
}

func (mr *manifestReader) RecordAtOffset(offset int) (interfaces.RecordReader, bool) {
	record, ok := mr.byOffset[offset]
	return record, ok
}
