package port

import "context"

// Page is one OCR input unit derived from an uploaded file.
type Page struct {
	Bytes       []byte
	ContentType string
}

// PageSource turns an uploaded file into OCR input pages. Vision providers
// consume PDFs and raster images directly; office and plain-text formats are
// converted to PDF first.
type PageSource interface {
	Pages(ctx context.Context, fileBytes []byte, contentType string) ([]Page, error)
}
