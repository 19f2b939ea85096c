// File: internal/types/mbdb.go
package types

// MBDBMagic is the four-byte signature at the start of every Manifest.mbdb file.
const MBDBMagic = "mbdb"

// MBDBHeaderSize is the fixed header length: the 4-byte magic followed by
// 2 bytes of unknown meaning (observed as 0x05 0x00). The two bytes are
// skipped, not validated.
const MBDBHeaderSize = 6

// Mode bit masks and values, POSIX st_mode semantics.
const (
	ModeTypeMask  uint16 = 0xE000
	ModeSymlink   uint16 = 0xA000
	ModeRegular   uint16 = 0x8000
	ModeDirectory uint16 = 0x4000
	ModePermMask  uint16 = 0x0FFF
)

// Property is one name/value pair from a record's property list. Names are
// arbitrary; pair order within a record is the on-disk order.
type Property struct {
	Name  string
	Value string
}

// MBDBRecord mirrors one on-disk record of a Manifest.mbdb file. Records are
// tightly packed with no length prefix or delimiter, so the struct also
// carries the byte offset at which the record began. Field order below is
// the on-disk decode order.
type MBDBRecord struct {
	StartOffset   int
	Domain        string
	RelativePath  string
	LinkTarget    string
	DataHash      string
	Unknown1      string
	Mode          uint16
	Unknown2      uint32
	Unknown3      uint32
	UserID        uint32
	GroupID       uint32
	ModifiedTime  uint32
	AccessedTime  uint32
	ChangedTime   uint32
	FileLength    uint64
	Flag          uint8
	PropertyCount uint8
	Properties    []Property
}
