// Package document extracts text from PDFs and renders their pages to images.
package document

import "context"

// Document reads PDF files.
type Document interface {
	// ExtractText returns the text of every page, each under a
	// "--- Page n ---" header.
	ExtractText(pdfPath string) (string, error)
	// Rasterize renders every page into destDir as page_<n>.png and returns
	// the paths ordered by page number.
	Rasterize(ctx context.Context, pdfPath, destDir string) ([]string, error)
}
