package manifest

import (
	"fmt"

	"github.com/digitalsleuth/go-mbdb/internal/types"
)

// readUint reads size bytes at offset as a big-endian unsigned integer and
// returns the value and the advanced offset. size is 1, 2, 4 or 8 at every
// call site.
func readUint(data []byte, offset, size int) (uint64, int, error) {
	if offset+size > len(data) {
		return 0, offset, fmt.Errorf("%d-byte integer at offset %d exceeds buffer of %d bytes: %w",
			size, offset, len(data), types.ErrTruncatedInput)
	}

	var value uint64
	for _, b := range data[offset : offset+size] {
		value = value<<8 | uint64(b)
	}
	return value, offset + size, nil
}

// readString reads one string at offset and returns the value and the
// advanced offset. Two encodings exist: the sentinel 0xFF 0xFF means the
// empty string and consumes exactly 2 bytes; anything else is a 2-byte
// big-endian length followed by that many payload bytes.
func readString(data []byte, offset int) (string, int, error) {
	if offset+2 > len(data) {
		return "", offset, fmt.Errorf("string header at offset %d exceeds buffer of %d bytes: %w",
			offset, len(data), types.ErrTruncatedInput)
	}

	if data[offset] == 0xFF && data[offset+1] == 0xFF {
		return "", offset + 2, nil
	}

	length, offset, err := readUint(data, offset, 2)
	if err != nil {
		return "", offset, err
	}

	end := offset + int(length)
	if end > len(data) {
		return "", offset, fmt.Errorf("%d-byte string payload at offset %d exceeds buffer of %d bytes: %w",
			length, offset, len(data), types.ErrTruncatedInput)
	}
	return decodeLatin1(data[offset:end]), end, nil
}

// decodeLatin1 maps each byte to the Unicode code point of the same value.
// Paths in mbdb files are ISO-8859-1; running them through a UTF-8 decoder
// would corrupt any byte above 0x7F.
func decodeLatin1(payload []byte) string {
	runes := make([]rune, len(payload))
	for i, b := range payload {
		runes[i] = rune(b)
	}
	return string(runes)
}

// encodeLatin1 is the inverse of decodeLatin1: it recovers the original
// payload bytes from a string previously decoded with it.
func encodeLatin1(s string) []byte {
	payload := make([]byte, 0, len(s))
	for _, r := range s {
		payload = append(payload, byte(r))
	}
	return payload
}
