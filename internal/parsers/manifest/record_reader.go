package manifest

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
	"github.com/digitalsleuth/go-mbdb/internal/types"
)

// recordReader implements the RecordReader interface over one raw record.
type recordReader struct {
	raw    *types.MBDBRecord
	fileID string
}

// parseRecord decodes one record beginning at offset and returns it together
// with the offset of the next record. There is no record length field; the
// end of a record is wherever its last field ends, so every field must be
// consumed in exactly the on-disk order.
func parseRecord(data []byte, offset int) (*types.MBDBRecord, int, error) {
	rec := &types.MBDBRecord{StartOffset: offset}
	var err error

	if rec.Domain, offset, err = readString(data, offset); err != nil {
		return nil, offset, err
	}
	if rec.RelativePath, offset, err = readString(data, offset); err != nil {
		return nil, offset, err
	}
	if rec.LinkTarget, offset, err = readString(data, offset); err != nil {
		return nil, offset, err
	}
	if rec.DataHash, offset, err = readString(data, offset); err != nil {
		return nil, offset, err
	}
	if rec.Unknown1, offset, err = readString(data, offset); err != nil {
		return nil, offset, err
	}

	var v uint64
	if v, offset, err = readUint(data, offset, 2); err != nil {
		return nil, offset, err
	}
	rec.Mode = uint16(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.Unknown2 = uint32(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.Unknown3 = uint32(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.UserID = uint32(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.GroupID = uint32(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.ModifiedTime = uint32(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.AccessedTime = uint32(v)
	if v, offset, err = readUint(data, offset, 4); err != nil {
		return nil, offset, err
	}
	rec.ChangedTime = uint32(v)
	if rec.FileLength, offset, err = readUint(data, offset, 8); err != nil {
		return nil, offset, err
	}
	if v, offset, err = readUint(data, offset, 1); err != nil {
		return nil, offset, err
	}
	rec.Flag = uint8(v)
	if v, offset, err = readUint(data, offset, 1); err != nil {
		return nil, offset, err
	}
	rec.PropertyCount = uint8(v)

	for i := 0; i < int(rec.PropertyCount); i++ {
		var name, value string
		if name, offset, err = readString(data, offset); err != nil {
			return nil, offset, err
		}
		if value, offset, err = readString(data, offset); err != nil {
			return nil, offset, err
		}
		rec.Properties = append(rec.Properties, types.Property{Name: name, Value: value})
	}

	return rec, offset, nil
}

// newRecordReader wraps a raw record and computes its file ID, the SHA-1
// digest of "<domain>-<relative path>". The digest input and algorithm are
// fixed by the backup format: content files on disk are named by exactly
// this digest, so it must match byte for byte.
func newRecordReader(raw *types.MBDBRecord) interfaces.RecordReader {
	sum := sha1.Sum([]byte(raw.Domain + "-" + raw.RelativePath))
	return &recordReader{
		raw:    raw,
		fileID: hex.EncodeToString(sum[:]),
	}
}

func (rr *recordReader) StartOffset() int {
	return rr.raw.StartOffset
}

func (rr *recordReader) Domain() string {
	return rr.raw.Domain
}

func (rr *recordReader) RelativePath() string {
	return rr.raw.RelativePath
}

func (rr *recordReader) FullPath() string {
	return rr.raw.Domain + "::" + rr.raw.RelativePath
}

func (rr *recordReader) FileID() string {
	return rr.fileID
}

func (rr *recordReader) LinkTarget() string {
	return rr.raw.LinkTarget
}

func (rr *recordReader) DataHash() string {
	return rr.raw.DataHash
}

func (rr *recordReader) Unknown1() string {
	return rr.raw.Unknown1
}

func (rr *recordReader) Mode() uint16 {
	return rr.raw.Mode
}

func (rr *recordReader) PermissionBits() uint16 {
	return rr.raw.Mode & types.ModePermMask
}

func (rr *recordReader) IsRegular() bool {
	return rr.raw.Mode&types.ModeTypeMask == types.ModeRegular
}

func (rr *recordReader) IsDirectory() bool {
	return rr.raw.Mode&types.ModeTypeMask == types.ModeDirectory
}

func (rr *recordReader) IsSymlink() bool {
	return rr.raw.Mode&types.ModeTypeMask == types.ModeSymlink
}

func (rr *recordReader) Unknown2() uint32 {
	return rr.raw.Unknown2
}

func (rr *recordReader) Unknown3() uint32 {
	return rr.raw.Unknown3
}

func (rr *recordReader) UserID() uint32 {
	return rr.raw.UserID
}

func (rr *recordReader) GroupID() uint32 {
	return rr.raw.GroupID
}

func (rr *recordReader) ModifiedTime() time.Time {
	return time.Unix(int64(rr.raw.ModifiedTime), 0)
}

func (rr *recordReader) AccessedTime() time.Time {
	return time.Unix(int64(rr.raw.AccessedTime), 0)
}

func (rr *recordReader) ChangedTime() time.Time {
	return time.Unix(int64(rr.raw.ChangedTime), 0)
}

func (rr *recordReader) Size() uint64 {
	return rr.raw.FileLength
}

func (rr *recordReader) Flag() uint8 {
	return rr.raw.Flag
}

func (rr *recordReader) Properties() []types.Property {
	props := make([]types.Property, len(rr.raw.Properties))
	copy(props, rr.raw.Properties)
	return props
}
