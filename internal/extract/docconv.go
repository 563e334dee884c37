package extract

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"code.sajari.com/docconv"
)

// DocconvExtractor implements Extractor with the docconv PDF converter.
// docconv shells out to pdftotext/pdfinfo; the page count arrives in the
// response metadata under "Pages".
type DocconvExtractor struct{}

// NewDocconvExtractor returns a docconv-backed PDF extractor.
func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{}
}

var _ Extractor = (*DocconvExtractor)(nil)

// Extract converts PDF content into text and page count.
func (e *DocconvExtractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	res, err := docconv.Convert(r, "application/pdf", false)
	if err != nil {
		return nil, fmt.Errorf("convert pdf: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages, _ := strconv.Atoi(res.Meta["Pages"])

	return &Result{Text: res.Body, Pages: pages}, nil
}
