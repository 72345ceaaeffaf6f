package extraction

import (
	"encoding/json"
	"strings"
)

// RawTextKey holds the unparsed model output when no structure could be
// recovered from it.
const RawTextKey = "raw_text"

// ParseRawResponse turns raw vision-model output into a flat field map. It
// first tries the widest JSON object span in the text; if that fails it falls
// back to line-wise "key: value" splitting, and as a last resort returns the
// whole text under RawTextKey. It never fails.
func ParseRawResponse(raw string) map[string]any {
	if fields, ok := parseJSONSpan(raw); ok {
		return fields
	}
	return parseLines(raw)
}

func parseJSONSpan(raw string) (map[string]any, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func parseLines(raw string) map[string]any {
	fields := map[string]any{RawTextKey: raw}
	for _, line := range strings.Split(raw, "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		key = strings.ReplaceAll(key, " ", "_")
		val = strings.TrimSpace(val)
		if key == "" || val == "" {
			continue
		}
		fields[key] = val
	}
	return fields
}
