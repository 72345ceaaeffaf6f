package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "LRN", "lrn"},
		{"trims whitespace", "  lrn  ", "lrn"},
		{"strips spaces", "local reference number", "localreferencenumber"},
		{"strips hyphens", "Ausfuhr-Land", "ausfuhrland"},
		{"strips underscores", "invoice_number", "invoicenumber"},
		{"transliterates umlauts", "Empfänger", "empfaenger"},
		{"transliterates sharp s", "Straße", "strasse"},
		{"transliterates oe", "Befördererstraße", "befoerdererstrasse"},
		{"folds accents", "émission", "emission"},
		{"mixed separators", "Zeitpunkt der Anmeldung", "zeitpunktderanmeldung"},
		{"empty", "", ""},
		{"only separators", " -_ ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFieldName(tt.input))
		})
	}
}

func TestNormalizeFieldName_Idempotent(t *testing.T) {
	inputs := []string{"Empfänger", "Straße 12", "Ausfuhr-Land", "émission", "LRN"}
	for _, in := range inputs {
		once := NormalizeFieldName(in)
		assert.Equal(t, once, NormalizeFieldName(once), "normalizing %q twice diverged", in)
	}
}
