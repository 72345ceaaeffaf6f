package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawResponse_JSON(t *testing.T) {
	raw := `{"lrn": "DE12345", "anmelder": {"name": "ACME GmbH"}, "menge": 12}`
	fields := ParseRawResponse(raw)

	assert.Equal(t, "DE12345", fields["lrn"])
	assert.Equal(t, map[string]any{"name": "ACME GmbH"}, fields["anmelder"])
	assert.Equal(t, float64(12), fields["menge"])
	assert.NotContains(t, fields, RawTextKey)
}

func TestParseRawResponse_JSONWithSurroundingProse(t *testing.T) {
	raw := "Here is the extracted data:\n```json\n{\"lrn\": \"DE99\"}\n```\nDone."
	fields := ParseRawResponse(raw)

	assert.Equal(t, "DE99", fields["lrn"])
}

func TestParseRawResponse_FallbackLines(t *testing.T) {
	raw := "LRN: DE12345\nAnmelder Name: ACME GmbH\nnote without separator\nEmpty Value:\n"
	fields := ParseRawResponse(raw)

	assert.Equal(t, "DE12345", fields["lrn"])
	assert.Equal(t, "ACME GmbH", fields["anmelder_name"])
	assert.NotContains(t, fields, "empty_value")
	assert.Equal(t, raw, fields[RawTextKey])
}

func TestParseRawResponse_MalformedJSONFallsBack(t *testing.T) {
	raw := "{\"lrn\": \"DE12345\",}\nLRN: DE12345"
	fields := ParseRawResponse(raw)

	// The broken JSON span is ignored; the line parser still finds the pair
	// and the full raw text is preserved.
	require.Contains(t, fields, RawTextKey)
	assert.Equal(t, raw, fields[RawTextKey])
	assert.Equal(t, "DE12345", fields["lrn"])
}

func TestParseRawResponse_NoStructure(t *testing.T) {
	raw := "completely unstructured prose without separators"
	fields := ParseRawResponse(raw)

	require.Len(t, fields, 1)
	assert.Equal(t, raw, fields[RawTextKey])
}

func TestParseRawResponse_ValueContainingColon(t *testing.T) {
	raw := "Zeitpunkt der Anmeldung: 2024-05-01T10:30:00"
	fields := ParseRawResponse(raw)

	// Only the first colon splits; the timestamp keeps its colons.
	assert.Equal(t, "2024-05-01T10:30:00", fields["zeitpunkt_der_anmeldung"])
}
