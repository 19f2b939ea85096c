// File: internal/interfaces/record.go
package interfaces

import (
	"time"

	"github.com/digitalsleuth/go-mbdb/internal/types"
)

// RecordReader provides read-only access to one decoded backup record.
type RecordReader interface {
	// StartOffset returns the byte offset at which the record began in the
	// source buffer. Offsets are unique per record and identify it within
	// one manifest.
	StartOffset() int

	// Domain returns the backup domain grouping this item
	Domain() string

	// RelativePath returns the item's path relative to its domain
	RelativePath() string

	// FullPath returns domain and relative path joined by "::"
	FullPath() string

	// FileID returns the 40-character hex SHA-1 digest of
	// "<domain>-<relative path>", the name under which the item's content
	// is stored in the backup directory.
	FileID() string

	// LinkTarget returns the symlink destination, empty for non-symlinks
	LinkTarget() string

	// DataHash returns the opaque content hash string recorded for the item
	DataHash() string

	// Unknown1 returns the undocumented string field following the data hash
	Unknown1() string

	// Mode returns the raw POSIX mode bits
	Mode() uint16

	// PermissionBits returns the permission portion of the mode
	PermissionBits() uint16

	// IsRegular reports whether the mode marks a regular file
	IsRegular() bool

	// IsDirectory reports whether the mode marks a directory
	IsDirectory() bool

	// IsSymlink reports whether the mode marks a symbolic link
	IsSymlink() bool

	// Unknown2 returns the first undocumented 32-bit field
	Unknown2() uint32

	// Unknown3 returns the second undocumented 32-bit field
	Unknown3() uint32

	// UserID returns the owning user ID
	UserID() uint32

	// GroupID returns the owning group ID
	GroupID() uint32

	// ModifiedTime returns the modification time
	ModifiedTime() time.Time

	// AccessedTime returns the access time
	AccessedTime() time.Time

	// ChangedTime returns the inode change time
	ChangedTime() time.Time

	// Size returns the file length in bytes
	Size() uint64

	// Flag returns the undocumented single-byte flag field
	Flag() uint8

	// Properties returns the record's name/value pairs in on-disk order
	Properties() []types.Property
}
