package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"zollkie/internal/extraction"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Page",
	"Raw Key",
	"Original Value",
	"Schema Field",
	"Mapped",
	"Confidence",
}

// Writer wraps csv.Writer for exporting extraction results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteJobResult writes one row per extracted field across all pages of a
// job result. Mapped fields come first, sorted by raw key, then unmapped
// fields sorted the same way.
func (w *Writer) WriteJobResult(result *extraction.JobResult) error {
	for i := range result.ExtractedData {
		if err := w.writePage(i+1, &result.ExtractedData[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func (w *Writer) writePage(page int, pr *extraction.PageResult) error {
	meta := pr.CustomsFormat.MappingMetadata
	if meta == nil {
		return nil
	}

	pageStr := strconv.Itoa(page)

	mappedKeys := make([]string, 0, len(meta.MappedFields))
	for k := range meta.MappedFields {
		mappedKeys = append(mappedKeys, k)
	}
	sort.Strings(mappedKeys)

	for _, key := range mappedKeys {
		mf := meta.MappedFields[key]
		row := []string{
			pageStr,
			key,
			formatValue(mf.OriginalValue),
			mf.SchemaField,
			formatBool(mf.MappedSuccessfully),
			meta.FieldMappingConfidence[key],
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	unmappedKeys := make([]string, 0, len(meta.UnmappedFields))
	for k := range meta.UnmappedFields {
		unmappedKeys = append(unmappedKeys, k)
	}
	sort.Strings(unmappedKeys)

	for _, key := range unmappedKeys {
		row := []string{
			pageStr,
			key,
			formatValue(meta.UnmappedFields[key]),
			"",
			formatBool(false),
			"",
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// formatValue renders an extracted value as a CSV cell. Scalars print as-is,
// composites fall back to their JSON encoding.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return formatBool(t)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_document_name}_{YYYY-MM-DD}.csv
func BuildFilename(documentName string) string {
	sanitized := SanitizeFilename(documentName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
