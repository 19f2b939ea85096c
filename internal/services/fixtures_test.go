package services

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
	"github.com/digitalsleuth/go-mbdb/internal/types"
)

// fakeRecord implements interfaces.RecordReader for service tests.
type fakeRecord struct {
	offset     int
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
	mtime      int64
	atime      int64
	ctime      int64
	size       uint64
	flag       uint8
	properties []types.Property
}

func (f *fakeRecord) StartOffset() int     { return f.offset }
func (f *fakeRecord) Domain() string       { return f.domain }
func (f *fakeRecord) RelativePath() string { return f.relPath }
func (f *fakeRecord) FullPath() string     { return f.domain + "::" + f.relPath }

func (f *fakeRecord) FileID() string {
	sum := sha1.Sum([]byte(f.domain + "-" + f.relPath))
	return hex.EncodeToString(sum[:])
}

func (f *fakeRecord) LinkTarget() string { return f.linkTarget }
func (f *fakeRecord) DataHash() string   { return f.dataHash }
func (f *fakeRecord) Unknown1() string   { return f.unknown1 }
func (f *fakeRecord) Mode() uint16       { return f.mode }

func (f *fakeRecord) PermissionBits() uint16 { return f.mode & types.ModePermMask }
func (f *fakeRecord) IsRegular() bool        { return f.mode&types.ModeTypeMask == types.ModeRegular }
func (f *fakeRecord) IsDirectory() bool      { return f.mode&types.ModeTypeMask == types.ModeDirectory }
func (f *fakeRecord) IsSymlink() bool        { return f.mode&types.ModeTypeMask == types.ModeSymlink }

func (f *fakeRecord) Unknown2() uint32 { return f.unknown2 }
func (f *fakeRecord) Unknown3() uint32 { return f.unknown3 }
func (f *fakeRecord) UserID() uint32   { return f.userID }
func (f *fakeRecord) GroupID() uint32  { return f.groupID }

func (f *fakeRecord) ModifiedTime() time.Time { return time.Unix(f.mtime, 0) }
func (f *fakeRecord) AccessedTime() time.Time { return time.Unix(f.atime, 0) }
func (f *fakeRecord) ChangedTime() time.Time  { return time.Unix(f.ctime, 0) }

func (f *fakeRecord) Size() uint64 { return f.size }
func (f *fakeRecord) Flag() uint8  { return f.flag }

func (f *fakeRecord) Properties() []types.Property {
	props := make([]types.Property, len(f.properties))
	copy(props, f.properties)
	return props
}

// fakeManifest implements interfaces.ManifestReader over fixed records.
type fakeManifest struct {
	records []interfaces.RecordReader
}

func newFakeManifest(records ...*fakeRecord) *fakeManifest {
	fm := &fakeManifest{}
	for _, record := range records {
		fm.records = append(fm.records, record)
	}
	return fm
}

func (fm *fakeManifest) Records() []interfaces.RecordReader {
	records := make([]interfaces.RecordReader, len(fm.records))
	copy(records, fm.records)
	return records
}

func (fm *fakeManifest) RecordCount() int {
	return len(fm.records)
}

func (fm *fakeManifest) RecordAtOffset(offset int) (interfaces.RecordReader, bool) {
	for _, record := range fm.records {
		if record.StartOffset() == offset {
			return record, true
		}
	}
	return nil, false
}
