package services

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/digitalsleuth/go-mbdb/internal/interfaces"
	"github.com/digitalsleuth/go-mbdb/internal/types"
)

func exportFixture() []interfaces.RecordReader {
	return []interfaces.RecordReader{
		&fakeRecord{
			offset:   6,
			domain:   "HomeDomain",
			relPath:  "Library/SMS/sms.db",
			dataHash: "\x01\x02þ",
			mode:     0o100644,
			userID:   501,
			groupID:  501,
			mtime:    1400000000,
			atime:    1400000001,
			ctime:    1400000002,
			size:     4096,
			flag:     4,
			properties: []types.Property{
				{Name: "key", Value: "value"},
			},
		},
		&fakeRecord{
			offset:  90,
			domain:  "HomeDomain",
			relPath: "Media",
			mode:    0o40755,
		},
	}
}

func TestExportService_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewExportService().Export(&buf, exportFixture(), ExportJSON)
	require.NoError(t, err)

	var catalog struct {
		RecordCount int `json:"recordCount"`
		Records     []struct {
			StartOffset  int    `json:"startOffset"`
			FileID       string `json:"fileID"`
			Domain       string `json:"domain"`
			RelativePath string `json:"relativePath"`
			DataHash     string `json:"dataHash"`
			Mode         string `json:"mode"`
			ModifiedTime int64  `json:"modifiedTime"`
			Size         uint64 `json:"size"`
			Properties   []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"properties"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &catalog))

	assert.Equal(t, 2, catalog.RecordCount)
	require.Len(t, catalog.Records, 2)

	first := catalog.Records[0]
	assert.Equal(t, 6, first.StartOffset)
	assert.Equal(t, "3d0d7e5fb2ce288813306e4d4636395e047a3d28", first.FileID)
	assert.Equal(t, "HomeDomain", first.Domain)
	assert.Equal(t, "Library/SMS/sms.db", first.RelativePath)
	// Raw payload bytes, hex encoded: 0x01 0x02 0xFE
	assert.Equal(t, "0102fe", first.DataHash)
	assert.Equal(t, "100644", first.Mode)
	assert.Equal(t, int64(1400000000), first.ModifiedTime)
	assert.Equal(t, uint64(4096), first.Size)
	require.Len(t, first.Properties, 1)
	assert.Equal(t, "key", first.Properties[0].Name)
	assert.Equal(t, "value", first.Properties[0].Value)

	assert.Empty(t, catalog.Records[1].Properties)
}

func TestExportService_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := NewExportService().Export(&buf, exportFixture(), ExportYAML)
	require.NoError(t, err)

	var catalog struct {
		RecordCount int `yaml:"recordCount"`
		Records     []struct {
			Domain string `yaml:"domain"`
			Size   uint64 `yaml:"size"`
		} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &catalog))

	assert.Equal(t, 2, catalog.RecordCount)
	require.Len(t, catalog.Records, 2)
	assert.Equal(t, "HomeDomain", catalog.Records[0].Domain)
	assert.Equal(t, uint64(4096), catalog.Records[0].Size)
}

func TestExportService_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewExportService().Export(&buf, exportFixture(), ExportFormat("xml"))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestLatin1Bytes(t *testing.T) {
	decoded := string([]rune{0x00, 0x41, 0x80, 0xE9, 0xFF})
	assert.Equal(t, []byte{0x00, 0x41, 0x80, 0xE9, 0xFF}, latin1Bytes(decoded))
}
