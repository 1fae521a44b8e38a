package pdf

import (
	"fmt"

	ledongthuc "github.com/ledongthuc/pdf"
)

// PageText is the extracted plain text of one page.
type PageText struct {
	Page    int    `json:"page"`
	Content string `json:"content"`
}

// ExtractText returns the plain text of every page in order. Pages
// without a text layer (scans, pure images) come back empty rather than
// failing the whole document.
//
// The extractor is known to panic on some malformed content streams, so
// the call is fenced with a recover and surfaced as an error.
func ExtractText(inputPath string) (pages []PageText, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("text extraction failed: %v", r)
		}
	}()

	f, reader, err := ledongthuc.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages = make([]PageText, 0, total)
	for i := 1; i <= total; i++ {
		content := ""
		page := reader.Page(i)
		if !page.V.IsNull() {
			if text, textErr := page.GetPlainText(nil); textErr == nil {
				content = text
			}
		}
		pages = append(pages, PageText{Page: i, Content: content})
	}
	return pages, nil
}
