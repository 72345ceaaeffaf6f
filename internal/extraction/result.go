package extraction

import (
	"time"

	"zollkie/internal/schema"
)

// ExtractionMetadata describes how one page's raw extraction was produced.
type ExtractionMetadata struct {
	Model                     string `json:"model"`
	ExtractionTimestamp       string `json:"extraction_timestamp"`
	FieldMappingApplied       bool   `json:"field_mapping_applied"`
	DetectedFieldPatternCount int    `json:"detected_field_pattern_count"`
}

// CustomsFormat is the populated declaration with its mapping provenance.
type CustomsFormat struct {
	*schema.Document
	MappingMetadata *MappingMetadata `json:"_mapping_metadata,omitempty"`
}

// PageResult is the full output for one processed page: the flat raw
// extraction, the populated declaration, and the invoice projection.
type PageResult struct {
	RawExtraction map[string]any `json:"raw_extraction"`
	CustomsFormat CustomsFormat  `json:"customs_format"`
	InvoiceFormat InvoiceView    `json:"invoice_format"`
	CustomsView   CustomsView    `json:"customs_view"`
}

// JobResult is the persisted result document for one extraction job.
type JobResult struct {
	JobID         string       `json:"job_id"`
	Timestamp     string       `json:"timestamp"`
	ExtractedData []PageResult `json:"extracted_data"`
	Status        string       `json:"status"`
}

// ProcessPage runs the post-OCR pipeline for one page: parse the raw model
// text, populate a fresh declaration, and project both domain views. The
// model name and timestamp only annotate metadata. Never fails; the worst
// input degrades to a raw-text-only extraction.
func ProcessPage(rawText, model string, now time.Time) PageResult {
	fields := ParseRawResponse(rawText)

	patterns := DetectFieldPatterns(rawText)

	doc := schema.NewDocument()
	meta := NewPopulator(DefaultCatalog()).Populate(doc, fields)

	raw := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		raw[k] = v
	}
	raw[FieldPatternsKey] = patterns
	raw[MetadataKey] = ExtractionMetadata{
		Model:                     model,
		ExtractionTimestamp:       now.UTC().Format(time.RFC3339),
		FieldMappingApplied:       true,
		DetectedFieldPatternCount: len(patterns),
	}

	return PageResult{
		RawExtraction: raw,
		CustomsFormat: CustomsFormat{Document: doc, MappingMetadata: meta},
		InvoiceFormat: ProjectInvoiceView(fields),
		CustomsView:   ProjectCustomsView(fields),
	}
}
