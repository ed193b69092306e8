package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

const emptyPageText = "[No extractable text on this page]"

func (d *implDocument) ExtractText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		fmt.Fprintf(&b, "--- Page %d ---\n", i)

		text := ""
		page := r.Page(i)
		if !page.V.IsNull() {
			text, err = page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("extract page %d: %w", i, err)
			}
		}
		if strings.TrimSpace(text) == "" {
			text = emptyPageText
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// fileExists is used to fail early with a clear message before shelling out.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
