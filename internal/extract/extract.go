package extract

import (
	"context"
	"io"
)

// Result holds what the extraction collaborator pulled out of a PDF.
type Result struct {
	Text  string
	Pages int
}

// Extractor parses PDF byte content into text and a page count.
type Extractor interface {
	Extract(ctx context.Context, r io.Reader) (*Result, error)
}
