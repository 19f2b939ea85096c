package services

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
)

// ExportFormat selects the serialization used by the export service.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// exportProperty is one serialized name/value pair.
type exportProperty struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// exportRecord is the serialized form of one record. Opaque byte-string
// fields are hex encoded so the output stays printable regardless of
// content.
type exportRecord struct {
	StartOffset  int              `json:"startOffset" yaml:"startOffset"`
	FileID       string           `json:"fileID" yaml:"fileID"`
	Domain       string           `json:"domain" yaml:"domain"`
	RelativePath string           `json:"relativePath" yaml:"relativePath"`
	LinkTarget   string           `json:"linkTarget,omitempty" yaml:"linkTarget,omitempty"`
	DataHash     string           `json:"dataHash,omitempty" yaml:"dataHash,omitempty"`
	Unknown1     string           `json:"unknown1,omitempty" yaml:"unknown1,omitempty"`
	Mode         string           `json:"mode" yaml:"mode"`
	Unknown2     uint32           `json:"unknown2" yaml:"unknown2"`
	Unknown3     uint32           `json:"unknown3" yaml:"unknown3"`
	UserID       uint32           `json:"userID" yaml:"userID"`
	GroupID      uint32           `json:"groupID" yaml:"groupID"`
	ModifiedTime int64            `json:"modifiedTime" yaml:"modifiedTime"`
	AccessedTime int64            `json:"accessedTime" yaml:"accessedTime"`
	ChangedTime  int64            `json:"changedTime" yaml:"changedTime"`
	Size         uint64           `json:"size" yaml:"size"`
	Flag         uint8            `json:"flag" yaml:"flag"`
	Properties   []exportProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// exportCatalog is the serialized top-level document.
type exportCatalog struct {
	RecordCount int            `json:"recordCount" yaml:"recordCount"`
	Records     []exportRecord `json:"records" yaml:"records"`
}

// ExportService serializes a decoded catalog for downstream tooling.
type ExportService struct{}

// NewExportService creates an export service.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Export writes the given records to w in the requested format, preserving
// their order.
func (es *ExportService) Export(w io.Writer, records []interfaces.RecordReader, format ExportFormat) error {
	catalog := exportCatalog{
		RecordCount: len(records),
		Records:     make([]exportRecord, 0, len(records)),
	}
	for _, record := range records {
		catalog.Records = append(catalog.Records, buildExportRecord(record))
	}

	switch format {
	case ExportJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(catalog); err != nil {
			return fmt.Errorf("failed to encode catalog as JSON: %w", err)
		}
	case ExportYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		if err := encoder.Encode(catalog); err != nil {
			return fmt.Errorf("failed to encode catalog as YAML: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	return nil
}

func buildExportRecord(record interfaces.RecordReader) exportRecord {
	properties := record.Properties()
	exported := exportRecord{
		StartOffset:  record.StartOffset(),
		FileID:       record.FileID(),
		Domain:       record.Domain(),
		RelativePath: record.RelativePath(),
		LinkTarget:   record.LinkTarget(),
		DataHash:     hex.EncodeToString(latin1Bytes(record.DataHash())),
		Unknown1:     hex.EncodeToString(latin1Bytes(record.Unknown1())),
		Mode:         fmt.Sprintf("%04o", record.Mode()),
		Unknown2:     record.Unknown2(),
		Unknown3:     record.Unknown3(),
		UserID:       record.UserID(),
		GroupID:      record.GroupID(),
		ModifiedTime: record.ModifiedTime().Unix(),
		AccessedTime: record.AccessedTime().Unix(),
		ChangedTime:  record.ChangedTime().Unix(),
		Size:         record.Size(),
		Flag:         record.Flag(),
	}
	for _, prop := range properties {
		exported.Properties = append(exported.Properties, exportProperty{Name: prop.Name, Value: prop.Value})
	}
	return exported
}

// latin1Bytes recovers the original payload bytes of a string the decoder
// produced with ISO-8859-1 semantics. Each rune is a code point below 256.
func latin1Bytes(s string) []byte {
	payload := make([]byte, 0, len(s))
	for _, r := range s {
		payload = append(payload, byte(r))
	}
	return payload
}
