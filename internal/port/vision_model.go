package port

import "context"

// VisionInput carries one page of a document for OCR extraction.
type VisionInput struct {
	PageBytes   []byte
	ContentType string
}

// VisionOutput contains the raw text a vision model returned for one page.
// The text is expected to contain a JSON-like object but is not guaranteed
// well-formed; downstream parsing handles malformed output.
type VisionOutput struct {
	RawText    string
	ModelUsed  string
	PromptUsed string
}

// VisionModel abstracts a vision-LLM OCR invocation.
type VisionModel interface {
	Extract(ctx context.Context, input VisionInput) (*VisionOutput, error)
}
