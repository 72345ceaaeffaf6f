package extraction

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPage_JSONInput(t *testing.T) {
	raw := `{"LRN": "DE12345", "Warenbezeichnung": "Maschinenteile", "invoice_number": "INV-1"}`
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	pr := ProcessPage(raw, "claude-sonnet", now)

	// Raw extraction keeps the parsed fields and gains the metadata keys.
	assert.Equal(t, "DE12345", pr.RawExtraction["LRN"])
	require.Contains(t, pr.RawExtraction, MetadataKey)
	require.Contains(t, pr.RawExtraction, FieldPatternsKey)

	meta, ok := pr.RawExtraction[MetadataKey].(ExtractionMetadata)
	require.True(t, ok)
	assert.Equal(t, "claude-sonnet", meta.Model)
	assert.Equal(t, "2024-05-01T10:00:00Z", meta.ExtractionTimestamp)
	assert.True(t, meta.FieldMappingApplied)

	// The declaration is populated and carries provenance.
	v, ok := pr.CustomsFormat.Get("kopf.lrn")
	require.True(t, ok)
	assert.Equal(t, "DE12345", v)
	require.NotNil(t, pr.CustomsFormat.MappingMetadata)
	assert.NotEmpty(t, pr.CustomsFormat.MappingMetadata.MappedFields)

	// The invoice projection sees the same flat map.
	assert.Equal(t, "INV-1", pr.InvoiceFormat.InvoiceNumber)
}

func TestProcessPage_UnstructuredInputDegrades(t *testing.T) {
	raw := "nothing machine readable here"

	pr := ProcessPage(raw, "gpt-4o", time.Now())

	assert.Equal(t, raw, pr.RawExtraction[RawTextKey])
	require.NotNil(t, pr.CustomsFormat.Document)
	require.NotNil(t, pr.CustomsFormat.MappingMetadata)
}

func TestProcessPage_ResultMarshals(t *testing.T) {
	pr := ProcessPage(`{"LRN": "DE1"}`, "m", time.Now())
	result := JobResult{
		JobID:         "job-1",
		Timestamp:     "2024-05-01T10:00:00Z",
		ExtractedData: []PageResult{pr},
		Status:        "completed",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "job-1", decoded["job_id"])

	pages, ok := decoded["extracted_data"].([]any)
	require.True(t, ok)
	require.Len(t, pages, 1)

	page := pages[0].(map[string]any)
	assert.Contains(t, page, "raw_extraction")
	assert.Contains(t, page, "customs_format")
	assert.Contains(t, page, "invoice_format")
	assert.Contains(t, page, "customs_view")

	customs := page["customs_format"].(map[string]any)
	assert.Contains(t, customs, "_mapping_metadata")
	kopf := customs["kopf"].(map[string]any)
	assert.Equal(t, "DE1", kopf["lrn"])
}

func TestProcessPage_NeverPanicsOnHostileInput(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"}{",
		`{"a": }`,
		"key: value\n:\n::",
		strings.Repeat("x", 10000),
	}
	for _, raw := range inputs {
		assert.NotPanics(t, func() {
			ProcessPage(raw, "m", time.Now())
		})
	}
}
