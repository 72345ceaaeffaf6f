// Package convert turns uploaded files into OCR input pages. PDFs and raster
// images pass through untouched since the vision providers accept them
// natively; office and plain-text formats are converted to PDF via Gotenberg
// first.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/starwalkn/gotenberg-go-client/v8"
	"github.com/starwalkn/gotenberg-go-client/v8/document"

	"zollkie/internal/config"
	"zollkie/internal/port"
)

// GotenbergPageSource implements port.PageSource backed by a Gotenberg
// conversion service.
type GotenbergPageSource struct {
	client  *gotenberg.Client
	timeout time.Duration
}

// NewGotenbergPageSource creates a page source from config.
func NewGotenbergPageSource(cfg *config.GotenbergConfig) (*GotenbergPageSource, error) {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	client, err := gotenberg.NewClient(cfg.URL, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("creating gotenberg client: %w", err)
	}

	return &GotenbergPageSource{client: client, timeout: timeout}, nil
}

// Pages returns the OCR input pages for an uploaded file. Formats the vision
// providers accept directly come back as a single pass-through page.
func (s *GotenbergPageSource) Pages(ctx context.Context, fileBytes []byte, contentType string) ([]port.Page, error) {
	switch contentType {
	case "application/pdf", "image/jpeg", "image/png":
		return []port.Page{{Bytes: fileBytes, ContentType: contentType}}, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return s.convertToPDF(ctx, fileBytes, "document.docx")
	case "text/plain":
		return s.convertToPDF(ctx, fileBytes, "document.txt")
	default:
		return nil, fmt.Errorf("unsupported content type for page conversion: %s", contentType)
	}
}

func (s *GotenbergPageSource) convertToPDF(ctx context.Context, fileBytes []byte, filename string) ([]port.Page, error) {
	convertCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := document.FromReader(filename, bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("creating gotenberg document: %w", err)
	}

	resp, err := s.client.Send(convertCtx, gotenberg.NewLibreOfficeRequest(doc))
	if err != nil {
		return nil, fmt.Errorf("converting %s to pdf: %w", filename, err)
	}
	defer func() { _ = resp.Body.Close() }()

	pdfBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading converted pdf: %w", err)
	}

	return []port.Page{{Bytes: pdfBytes, ContentType: "application/pdf"}}, nil
}
