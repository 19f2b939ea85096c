package services

import (
	"fmt"
	"sort"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
)

// SortKey selects the record field used to order listing output.
type SortKey string

const (
	SortByPath     SortKey = "path"
	SortByModified SortKey = "mtime"
	SortByAccessed SortKey = "atime"
	SortByChanged  SortKey = "ctime"
	SortBySize     SortKey = "size"
)

// DomainStats aggregates the records of one backup domain.
type DomainStats struct {
	Domain         string
	FileCount      int
	DirectoryCount int
	SymlinkCount   int
	OtherCount     int
	TotalSize      uint64
}

// CatalogService answers queries against a decoded manifest. Lookup indexes
// are built once, after the sequential decode pass has established every
// record boundary.
type CatalogService struct {
	manifest interfaces.ManifestReader
	byFileID map[string]interfaces.RecordReader
}

// NewCatalogService indexes a decoded manifest for lookups by file ID.
func NewCatalogService(manifest interfaces.ManifestReader) *CatalogService {
	byFileID := make(map[string]interfaces.RecordReader, manifest.RecordCount())
	for _, record := range manifest.Records() {
		byFileID[record.FileID()] = record
	}
	return &CatalogService{
		manifest: manifest,
		byFileID: byFileID,
	}
}

// RecordCount returns the number of records in the catalog.
func (cs *CatalogService) RecordCount() int {
	return cs.manifest.RecordCount()
}

// Records returns all records in file order.
func (cs *CatalogService) Records() []interfaces.RecordReader {
	return cs.manifest.Records()
}

// LookupByFileID returns the record whose content file carries the given
// 40-character hex digest name.
func (cs *CatalogService) LookupByFileID(fileID string) (interfaces.RecordReader, bool) {
	record, ok := cs.byFileID[fileID]
	return record, ok
}

// LookupByOffset returns the record that began at the given byte offset.
func (cs *CatalogService) LookupByOffset(offset int) (interfaces.RecordReader, bool) {
	return cs.manifest.RecordAtOffset(offset)
}

// SortedRecords returns the catalog ordered by the given key. The default
// direction is ascending for the path key and descending for the time and
// size keys (newest or largest first); reverse flips whichever default
// applies. The sort is stable, so equal keys keep file order.
func (cs *CatalogService) SortedRecords(key SortKey, reverse bool) ([]interfaces.RecordReader, error) {
	var less func(a, b interfaces.RecordReader) bool
	switch key {
	case SortByPath:
		less = func(a, b interfaces.RecordReader) bool { return a.FullPath() < b.FullPath() }
	case SortByModified:
		less = func(a, b interfaces.RecordReader) bool { return a.ModifiedTime().After(b.ModifiedTime()) }
	case SortByAccessed:
		less = func(a, b interfaces.RecordReader) bool { return a.AccessedTime().After(b.AccessedTime()) }
	case SortByChanged:
		less = func(a, b interfaces.RecordReader) bool { return a.ChangedTime().After(b.ChangedTime()) }
	case SortBySize:
		less = func(a, b interfaces.RecordReader) bool { return a.Size() > b.Size() }
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}

	if reverse {
		forward := less
		less = func(a, b interfaces.RecordReader) bool { return forward(b, a) }
	}

	records := cs.manifest.Records()
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
	return records, nil
}

// RecordsInDomain returns the records of one domain in file order.
func (cs *CatalogService) RecordsInDomain(domain string) []interfaces.RecordReader {
	var records []interfaces.RecordReader
	for _, record := range cs.manifest.Records() {
		if record.Domain() == domain {
			records = append(records, record)
		}
	}
	return records
}

// DomainStats aggregates record counts and sizes per domain, sorted by
// domain name.
func (cs *CatalogService) DomainStats() []DomainStats {
	byDomain := make(map[string]*DomainStats)
	for _, record := range cs.manifest.Records() {
		stats, ok := byDomain[record.Domain()]
		if !ok {
			stats = &DomainStats{Domain: record.Domain()}
			byDomain[record.Domain()] = stats
		}
		switch {
		case record.IsRegular():
			stats.FileCount++
		case record.IsDirectory():
			stats.DirectoryCount++
		case record.IsSymlink():
			stats.SymlinkCount++
		default:
			stats.OtherCount++
		}
		stats.TotalSize += record.Size()
	}

	domains := make([]DomainStats, 0, len(byDomain))
	for _, stats := range byDomain {
		domains = append(domains, *stats)
	}
	sort.Slice(domains, func(i, j int) bool { return domains[i].Domain < domains[j].Domain })
	return domains
}
