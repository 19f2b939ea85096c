package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
	"github.com/digitalsleuth/go-mbdb/internal/types"
)

// TimeFormat selects how listing timestamps are rendered.
type TimeFormat string

const (
	TimeLocal TimeFormat = "local"
	TimeUTC   TimeFormat = "utc"
	TimeEpoch TimeFormat = "epoch"
)

// ListingMode selects how much of each record a listing row shows.
type ListingMode int

const (
	// ModeDefault shows the file ID and the full path
	ModeDefault ListingMode = iota
	// ModePathsOnly shows only the full path
	ModePathsOnly
	// ModeDetailed shows an ls -l style row with ownership, size and times
	ModeDetailed
)

// ListingOptions configures a ListingFormatter.
type ListingOptions struct {
	Mode         ListingMode
	TabDelimited bool
	TimeFormat   TimeFormat
}

// ListingFormatter renders decoded records as display rows.
type ListingFormatter struct {
	opts ListingOptions
}

// NewListingFormatter creates a formatter for the given options. Tab
// delimited output only makes sense for detailed rows, so it forces
// ModeDetailed.
func NewListingFormatter(opts ListingOptions) *ListingFormatter {
	if opts.TabDelimited {
		opts.Mode = ModeDetailed
	}
	return &ListingFormatter{opts: opts}
}

// FormatRecord renders one record as a single listing row.
func (lf *ListingFormatter) FormatRecord(record interfaces.RecordReader) string {
	switch lf.opts.Mode {
	case ModePathsOnly:
		return record.FullPath()
	case ModeDetailed:
		return lf.detailedRow(record)
	default:
		return fmt.Sprintf("%s %s", record.FileID(), record.FullPath())
	}
}

func (lf *ListingFormatter) detailedRow(record interfaces.RecordReader) string {
	var row string
	if lf.opts.TabDelimited {
		row = fmt.Sprintf("%c%s\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s",
			fileTypeChar(record.Mode()),
			permissionString(record.PermissionBits()),
			record.UserID(),
			record.GroupID(),
			record.Size(),
			lf.timeString(record.ModifiedTime()),
			lf.timeString(record.AccessedTime()),
			lf.timeString(record.ChangedTime()),
			record.FileID(),
			record.Domain(),
			record.RelativePath())
	} else {
		row = fmt.Sprintf("%c%s %5d %5d %7d %s  %s  %s  %s %s::%s",
			fileTypeChar(record.Mode()),
			permissionString(record.PermissionBits()),
			record.UserID(),
			record.GroupID(),
			record.Size(),
			lf.timeString(record.ModifiedTime()),
			lf.timeString(record.AccessedTime()),
			lf.timeString(record.ChangedTime()),
			record.FileID(),
			record.Domain(),
			record.RelativePath())
	}

	if record.IsSymlink() {
		row = fmt.Sprintf("%s -> %s", row, record.LinkTarget())
	}

	separator := " "
	if lf.opts.TabDelimited {
		separator = "\t"
	}
	for _, prop := range record.Properties() {
		row = fmt.Sprintf("%s%s%s=%q", row, separator, prop.Name, prop.Value)
	}
	return row
}

func (lf *ListingFormatter) timeString(t time.Time) string {
	switch lf.opts.TimeFormat {
	case TimeEpoch:
		return fmt.Sprintf("%10d", t.Unix())
	case TimeUTC:
		return t.UTC().Format("2006-01-02 15:04:05")
	default:
		return t.Local().Format("2006-01-02 15:04:05")
	}
}

// fileTypeChar maps the mode's file type bits to the leading character of an
// ls style row: 'l' symlink, '-' regular file, 'd' directory, '?' anything
// else.
func fileTypeChar(mode uint16) byte {
	switch mode & types.ModeTypeMask {
	case types.ModeSymlink:
		return 'l'
	case types.ModeRegular:
		return '-'
	case types.ModeDirectory:
		return 'd'
	default:
		return '?'
	}
}

// permissionString renders the low nine permission bits as "rwxrwxrwx".
func permissionString(perm uint16) string {
	var sb strings.Builder
	for shift := 6; shift >= 0; shift -= 3 {
		triplet := perm >> shift
		if triplet&0x4 != 0 {
			sb.WriteByte('r')
		} else {
			sb.WriteByte('-')
		}
		if triplet&0x2 != 0 {
			sb.WriteByte('w')
		} else {
			sb.WriteByte('-')
		}
		if triplet&0x1 != 0 {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
