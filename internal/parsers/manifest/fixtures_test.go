package manifest

import "github.com/digitalsleuth/go-mbdb/internal/types"

// testRecord describes one record for fixture construction. Zero-value
// strings are encoded with the 0xFF 0xFF sentinel, matching what real
// manifests do for absent values.
type testRecord struct {
	domain     string
	relPath    string
	linkTarget string
	dataHash   string
	unknown1   string
	mode       uint16
	unknown2   uint32
	unknown3   uint32
	userID     uint32
	groupID    uint32
	mtime      uint32
	atime      uint32
	ctime      uint32
	size       uint64
	flag       uint8
	properties []types.Property
}

func appendTestUint(buf []byte, value uint64, size int) []byte {
	for shift := (size - 1) * 8; shift >= 0; shift -= 8 {
		buf = append(buf, byte(value>>shift))
	}
	return buf
}

func appendTestString(buf []byte, s string) []byte {
	if s == "" {
		return append(buf, 0xFF, 0xFF)
	}
	payload := encodeLatin1(s)
	buf = appendTestUint(buf, uint64(len(payload)), 2)
	return append(buf, payload...)
}

func (tr testRecord) encode() []byte {
	var buf []byte
	buf = appendTestString(buf, tr.domain)
	buf = appendTestString(buf, tr.relPath)
	buf = appendTestString(buf, tr.linkTarget)
	buf = appendTestString(buf, tr.dataHash)
	buf = appendTestString(buf, tr.unknown1)
	buf = appendTestUint(buf, uint64(tr.mode), 2)
	buf = appendTestUint(buf, uint64(tr.unknown2), 4)
	buf = appendTestUint(buf, uint64(tr.unknown3), 4)
	buf = appendTestUint(buf, uint64(tr.userID), 4)
	buf = appendTestUint(buf, uint64(tr.groupID), 4)
	buf = appendTestUint(buf, uint64(tr.mtime), 4)
	buf = appendTestUint(buf, uint64(tr.atime), 4)
	buf = appendTestUint(buf, uint64(tr.ctime), 4)
	buf = appendTestUint(buf, tr.size, 8)
	buf = append(buf, tr.flag)
	buf = append(buf, byte(len(tr.properties)))
	for _, prop := range tr.properties {
		buf = appendTestString(buf, prop.Name)
		buf = appendTestString(buf, prop.Value)
	}
	return buf
}

// buildTestManifest assembles a complete manifest buffer: magic, the two
// observed header bytes, then the records back to back.
func buildTestManifest(records ...testRecord) []byte {
	buf := []byte{'m', 'b', 'd', 'b', 0x05, 0x00}
	for _, record := range records {
		buf = append(buf, record.encode()...)
	}
	return buf
}
